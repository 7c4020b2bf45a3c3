package nodemark

import (
	_ "embed"
	"strings"

	"golang.org/x/mod/semver"
)

//go:embed VERSION
var release string

// Version returns the module release without the leading v.
func Version() string { return strings.TrimSpace(release) }

// Tag returns the release in git tag form.
func Tag() string { return "v" + Version() }

// Supports reports whether this release can serve a host pinned to min:
// the major versions match and this release is not older.
func Supports(min string) bool {
	if !strings.HasPrefix(min, "v") {
		min = "v" + min
	}
	cur := Tag()
	if !semver.IsValid(cur) || !semver.IsValid(min) {
		return false
	}
	return semver.Major(cur) == semver.Major(min) && semver.Compare(cur, min) >= 0
}
