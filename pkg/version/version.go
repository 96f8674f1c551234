// Package version reports how a pursue-tools binary was built.
//
// Release builds set the variables with -ldflags, for example
//
//	-X github.com/pursue-app/pursue-tools/pkg/version.Version=v1.2.0
//	-X github.com/pursue-app/pursue-tools/pkg/version.GitCommit=$(git rev-parse --short HEAD)
//	-X github.com/pursue-app/pursue-tools/pkg/version.BuildDate=$(date -u +%FT%TZ)
//
// Binaries built with `go install module@version` fall back to the module
// version and VCS stamp recorded by the toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersion returns the build information of the running binary.
func GetVersion() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if Version == "dev" {
		fromBuildInfo(&info)
	}
	return info
}

// fromBuildInfo fills in what the toolchain stamped into the binary.
// Local builds report "(devel)", which is skipped.
func fromBuildInfo(info *Info) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" && len(s.Value) >= 7 {
				info.GitCommit = s.Value[:7]
			}
		case "vcs.time":
			if info.BuildDate == "unknown" {
				info.BuildDate = s.Value
			}
		}
	}
}

// String returns the one-line form printed by `version`.
func (i Info) String() string {
	return fmt.Sprintf("pursue-tools %s (%s, %s) built with %s on %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
