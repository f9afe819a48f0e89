// Package version reports the noots release and the build it came from.
package version

import (
	_ "embed"
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

//go:embed VERSION
var versionFile string

// Set with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/leefowlercu/noots/internal/version.gitCommit=$(git rev-parse --short HEAD)"
var (
	gitCommit string
	buildDate string
)

const (
	unknown     = "unknown"
	shortCommit = 7
)

// Info describes the running binary.
type Info struct {
	Version   string `yaml:"version"`
	GitCommit string `yaml:"git_commit"`
	BuildDate string `yaml:"build_date"`
	GoVersion string `yaml:"go_version"`
	Platform  string `yaml:"platform"`
}

// String renders Info as aligned label/value lines.
func (i Info) String() string {
	return fmt.Sprintf("Version:    %s\nGit Commit: %s\nBuild Date: %s\nGo Version: %s\nPlatform:   %s",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}

// Short formats Info on one line for the --version flag.
func (i Info) Short() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.GitCommit, i.BuildDate)
}

// Get collects version information. Linker values take precedence over
// VCS stamps recorded by the Go toolchain.
func Get() Info {
	vcs := readVCS()
	return Info{
		Version:   strings.TrimSpace(versionFile),
		GitCommit: resolveCommit(gitCommit, vcs),
		BuildDate: resolveBuildDate(buildDate, vcs),
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// vcsStamp holds the VCS settings embedded by "go build".
type vcsStamp struct {
	revision string
	time     string
	modified bool
}

func readVCS() vcsStamp {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return vcsStamp{}
	}
	return parseSettings(info.Settings)
}

func parseSettings(settings []debug.BuildSetting) vcsStamp {
	var s vcsStamp
	for _, setting := range settings {
		switch setting.Key {
		case "vcs.revision":
			s.revision = setting.Value
			if len(s.revision) > shortCommit {
				s.revision = s.revision[:shortCommit]
			}
		case "vcs.time":
			s.time = setting.Value
		case "vcs.modified":
			s.modified = setting.Value == "true"
		}
	}
	return s
}

func resolveCommit(linked string, vcs vcsStamp) string {
	if linked != "" {
		return linked
	}
	if vcs.revision == "" {
		return unknown
	}
	if vcs.modified {
		return vcs.revision + "-dirty"
	}
	return vcs.revision
}

func resolveBuildDate(linked string, vcs vcsStamp) string {
	if linked != "" {
		return linked
	}
	if vcs.time != "" {
		return vcs.time
	}
	return unknown
}
