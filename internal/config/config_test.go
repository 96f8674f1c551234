package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pursue-app/pursue-tools/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pursue-tools.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "images", cfg.Icons.Dir)
	assert.Equal(t, "ic_icon*.png", cfg.Icons.Pattern)
	assert.Equal(t, 20, cfg.Icons.Border)
	assert.Equal(t, "pursue-app/app/src/main/res", cfg.Densities.ResDir)
	assert.Equal(t, 64, cfg.Densities.BaseSize)
	require.NoError(t, cfg.Validate())

	var sizes []int
	for _, b := range cfg.Densities.Buckets {
		sizes = append(sizes, b.Size(cfg.Densities.BaseSize))
	}
	assert.Equal(t, []int{64, 96, 128, 192, 256}, sizes)
}

func TestBucketSizeTruncates(t *testing.T) {
	hdpi := Bucket{Name: "drawable-hdpi", Scale: 1.5}
	assert.Equal(t, 73, hdpi.Size(49))
	assert.Equal(t, 1, hdpi.Size(1))
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
icons:
  border: 12
densities:
  base_size: 48
  res_dir: app/res
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Icons.Border)
	assert.Equal(t, "images", cfg.Icons.Dir, "unset keys keep defaults")
	assert.Equal(t, 48, cfg.Densities.BaseSize)
	assert.Equal(t, "app/res", cfg.Densities.ResDir)
	assert.Len(t, cfg.Densities.Buckets, 5)
}

func TestLoadCustomBuckets(t *testing.T) {
	path := writeConfig(t, `
densities:
  buckets:
    - name: mipmap-mdpi
      scale: 1
    - name: mipmap-xhdpi
      scale: 2
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Bucket{{"mipmap-mdpi", 1}, {"mipmap-xhdpi", 2}}, cfg.Densities.Buckets)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		missing bool
		message string
	}{
		{name: "missing file", missing: true, message: "failed to read config file"},
		{name: "bad yaml", content: "icons: [", message: "failed to parse config file"},
		{name: "negative border", content: "icons:\n  border: -1\n", message: "icons.border must not be negative"},
		{name: "zero base size", content: "densities:\n  base_size: 0\n", message: "densities.base_size must be positive"},
		{name: "empty bucket name", content: "densities:\n  buckets:\n    - scale: 2\n", message: "name is required"},
		{name: "bucket scales to zero", content: "densities:\n  buckets:\n    - name: tiny\n      scale: 0.001\n", message: "scales base size 64 to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "absent.yaml")
			if !tt.missing {
				path = writeConfig(t, tt.content)
			}

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrConfiguration), "expected configuration error, got %v", err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
