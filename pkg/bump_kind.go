package bumpsemver

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBumpKind is returned by ParseBumpKind for selectors other than patch, minor or major.
var ErrUnknownBumpKind = errors.New("unknown bump kind")

// BumpKind selects which version component to increment.
type BumpKind int

const (
	// Patch increments the patch component. It is the zero value.
	Patch BumpKind = iota
	// Minor increments the minor component and resets patch.
	Minor
	// Major increments the major component and resets minor and patch.
	Major
)

// String returns the lower-case selector name.
func (k BumpKind) String() string {
	switch k {
	case Major:
		return "major"
	case Minor:
		return "minor"
	default:
		return "patch"
	}
}

// SupportedBumpKinds lists the accepted selector names.
func SupportedBumpKinds() []string {
	return []string{Patch.String(), Minor.String(), Major.String()}
}

// ParseBumpKind converts a selector such as "minor" into a BumpKind.
// Matching ignores case and surrounding whitespace; an empty selector means Patch.
func ParseBumpKind(s string) (BumpKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "patch":
		return Patch, nil
	case "minor":
		return Minor, nil
	case "major":
		return Major, nil
	}
	return Patch, fmt.Errorf("%w: %q (supported values: %s)", ErrUnknownBumpKind, s, strings.Join(SupportedBumpKinds(), ", "))
}
