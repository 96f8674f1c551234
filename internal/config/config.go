// Package config holds the settings of the icon asset tools.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pursue-app/pursue-tools/internal/errors"
)

// Config is the root of pursue-tools.yaml.
type Config struct {
	Icons     IconsConfig     `yaml:"icons"`
	Densities DensitiesConfig `yaml:"densities"`
}

// IconsConfig configures fix-icon-borders.
type IconsConfig struct {
	Dir     string `yaml:"dir"`
	Pattern string `yaml:"pattern"`
	Border  int    `yaml:"border"`
}

// DensitiesConfig configures generate-densities.
type DensitiesConfig struct {
	SourceDir string   `yaml:"source_dir"`
	ResDir    string   `yaml:"res_dir"`
	Pattern   string   `yaml:"pattern"`
	BaseSize  int      `yaml:"base_size"`
	Buckets   []Bucket `yaml:"buckets"`
}

// Bucket is one density-specific resource directory.
type Bucket struct {
	Name  string  `yaml:"name"`
	Scale float64 `yaml:"scale"`
}

// Size returns the edge length for base, truncated toward zero.
func (b Bucket) Size(base int) int {
	return int(float64(base) * b.Scale)
}

// Defaults.
const (
	DefaultImagesDir = "images"
	DefaultResDir    = "pursue-app/app/src/main/res"
	DefaultBaseSize  = 64
	DefaultBorder    = 20

	DefaultIconPattern    = "ic_icon*.png"
	DefaultDensityPattern = "ic_icon*"
)

// DefaultBuckets are the Android drawable densities relative to mdpi.
func DefaultBuckets() []Bucket {
	return []Bucket{
		{Name: "drawable-mdpi", Scale: 1},
		{Name: "drawable-hdpi", Scale: 1.5},
		{Name: "drawable-xhdpi", Scale: 2},
		{Name: "drawable-xxhdpi", Scale: 3},
		{Name: "drawable-xxxhdpi", Scale: 4},
	}
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Icons: IconsConfig{
			Dir:     DefaultImagesDir,
			Pattern: DefaultIconPattern,
			Border:  DefaultBorder,
		},
		Densities: DensitiesConfig{
			SourceDir: DefaultImagesDir,
			ResDir:    DefaultResDir,
			Pattern:   DefaultDensityPattern,
			BaseSize:  DefaultBaseSize,
			Buckets:   DefaultBuckets(),
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file
// keep their default value. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigurationWithCause(err, "failed to read config file %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.ConfigurationWithCause(err, "failed to parse config file %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the values can drive the tools.
func (c *Config) Validate() error {
	if err := c.Icons.Validate(); err != nil {
		return err
	}
	return c.Densities.Validate()
}

// Validate checks the border fixer settings.
func (c IconsConfig) Validate() error {
	if c.Dir == "" {
		return errors.Configuration("icons.dir is required")
	}
	if c.Pattern == "" {
		return errors.Configuration("icons.pattern is required")
	}
	if c.Border < 0 {
		return errors.Configuration("icons.border must not be negative, got %d", c.Border)
	}
	return nil
}

// Validate checks the density generator settings.
func (c DensitiesConfig) Validate() error {
	if c.SourceDir == "" {
		return errors.Configuration("densities.source_dir is required")
	}
	if c.ResDir == "" {
		return errors.Configuration("densities.res_dir is required")
	}
	if c.Pattern == "" {
		return errors.Configuration("densities.pattern is required")
	}
	if c.BaseSize <= 0 {
		return errors.Configuration("densities.base_size must be positive, got %d", c.BaseSize)
	}
	if len(c.Buckets) == 0 {
		return errors.Configuration("densities.buckets must not be empty")
	}
	for _, b := range c.Buckets {
		if b.Name == "" {
			return errors.Configuration("densities.buckets: name is required")
		}
		if b.Size(c.BaseSize) <= 0 {
			return errors.Configuration("densities.buckets: %s scales base size %d to %d", b.Name, c.BaseSize, b.Size(c.BaseSize))
		}
	}
	return nil
}
