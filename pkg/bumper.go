package bumpsemver

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrInvalidVersion is returned when text is not a plain <major>.<minor>.<patch> version.
var ErrInvalidVersion = errors.New("invalid version: expected <major>.<minor>.<patch> with decimal components")

// versionPattern matches the whole text, so any prefix, suffix or whitespace fails.
var versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)$`)

// trimLineTerminator removes at most one trailing "\r\n" or "\n".
func trimLineTerminator(text string) string {
	if strings.HasSuffix(text, "\r\n") {
		return text[:len(text)-2]
	}
	return strings.TrimSuffix(text, "\n")
}

// parseVersion validates text and returns its numeric components.
func parseVersion(text string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(trimLineTerminator(text))
	if m == nil {
		return nil, ErrInvalidVersion
	}

	var parts [3]uint64
	for i := range parts {
		n, err := strconv.ParseUint(m[i+1], 10, 64)
		if err != nil {
			return nil, ErrInvalidVersion
		}
		parts[i] = n
	}
	return semver.New(parts[0], parts[1], parts[2], "", ""), nil
}

// formatVersion renders v as major.minor.patch without any prefix or terminator.
func formatVersion(v *semver.Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch())
}

// bumpVersion applies kind to v. Out-of-range kinds bump the patch component.
func bumpVersion(v *semver.Version, kind BumpKind) (*semver.Version, error) {
	var next semver.Version
	switch kind {
	case Major:
		if v.Major() == math.MaxUint64 {
			return nil, ErrInvalidVersion
		}
		next = v.IncMajor()
	case Minor:
		if v.Minor() == math.MaxUint64 {
			return nil, ErrInvalidVersion
		}
		next = v.IncMinor()
	default:
		if v.Patch() == math.MaxUint64 {
			return nil, ErrInvalidVersion
		}
		next = v.IncPatch()
	}
	return &next, nil
}

// Bump validates text as a semantic version and returns the next version for kind.
//
// text may end with a single "\n" or "\r\n", which is not carried into the
// result. Any other deviation from <digits>.<digits>.<digits> yields
// ErrInvalidVersion. Bump performs no I/O.
func Bump(text string, kind BumpKind) (string, error) {
	current, err := parseVersion(text)
	if err != nil {
		return "", err
	}
	next, err := bumpVersion(current, kind)
	if err != nil {
		return "", err
	}

	return formatVersion(next), nil
}
