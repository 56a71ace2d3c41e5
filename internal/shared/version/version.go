// Package version carries the build version of the CLI and compares it
// against published releases.
package version

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Set at build time with -ldflags "-X .../version.Version=v1.2.3".
var (
	Version = "dev"
	Commit  = "unknown"
)

// String renders the build identity as "centreconnect <version> (<commit>)".
func String() string {
	return fmt.Sprintf("centreconnect %s (%s)", Version, Commit)
}

// Normalize adds the "v" prefix semver expects: "1.2.3" -> "v1.2.3".
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// Valid reports whether v is a semantic version once normalized.
func Valid(v string) bool {
	return semver.IsValid(Normalize(v))
}

// HasNewerVersion reports whether latest is a release newer than current.
// Development builds and non-semver versions are always considered outdated
// when latest is a valid release.
func HasNewerVersion(current, latest string) bool {
	latest = Normalize(latest)
	if !semver.IsValid(latest) {
		return false
	}

	current = Normalize(current)
	if !semver.IsValid(current) {
		return true
	}
	return semver.Compare(current, latest) < 0
}
