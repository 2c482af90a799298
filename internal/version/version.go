// Package version provides centralized version information for ragflowctl.
//
// Build-time injection:
//
//	-ldflags "-X ragflowctl/internal/version.version=v1.0.0 -X ragflowctl/internal/version.commit=abc123 -X ragflowctl/internal/version.buildTime=2026-01-01T00:00:00Z"
package version

import (
	"fmt"
	"io"
	"strings"
)

// These variables are set via ldflags during build.
// They should not be modified directly in code.
//
//nolint:gochecknoglobals // Required for build-time injection via ldflags.
var (
	// version holds the application version (e.g., "v1.0.0").
	version string
	// commit holds the git commit hash.
	commit string
	// buildTime holds the build timestamp in RFC3339 format.
	buildTime string
)

// ApplicationName is the name of the application displayed in version output.
const ApplicationName = "ragflowctl"

// Default values used when version information is not available.
const (
	DefaultVersion   = "dev"
	DefaultCommit    = "unknown"
	DefaultBuildTime = "unknown"
)

// Info encapsulates all version-related information with proper defaults.
type Info struct {
	Version   string
	Commit    string
	BuildTime string
}

// Get returns the current version information, substituting defaults for
// values the build did not stamp.
func Get() *Info {
	return &Info{
		Version:   withDefault(version, DefaultVersion),
		Commit:    withDefault(commit, DefaultCommit),
		BuildTime: withDefault(buildTime, DefaultBuildTime),
	}
}

func withDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// FormatShort returns a single-line output containing only the version number.
func (i *Info) FormatShort() string {
	return i.Version
}

// FormatFull returns a multi-line output with complete version information.
func (i *Info) FormatFull() string {
	var b strings.Builder

	b.WriteString(ApplicationName)
	b.WriteString("\n")
	b.WriteString("Version: ")
	b.WriteString(i.Version)
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(i.Commit)
	b.WriteString("\n")
	b.WriteString("Built: ")
	b.WriteString(i.BuildTime)
	b.WriteString("\n")

	return b.String()
}

// Write formats the version based on the short flag and writes it to w.
func (i *Info) Write(w io.Writer, short bool) error {
	if short {
		_, err := fmt.Fprintln(w, i.FormatShort())
		return err
	}

	_, err := fmt.Fprint(w, i.FormatFull())
	return err
}

// IsDevelopment returns true if the version indicates a development build.
func (i *Info) IsDevelopment() bool {
	return i.Version == DefaultVersion
}

// SetBuildVars sets the build-time variables. This is intended for tests;
// production builds inject these via ldflags.
func SetBuildVars(ver, com, bt string) {
	version = ver
	commit = com
	buildTime = bt
}

// ResetBuildVars resets all build variables to empty values.
func ResetBuildVars() {
	version = ""
	commit = ""
	buildTime = ""
}
