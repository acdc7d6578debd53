package assets

import (
	"fmt"
	"regexp"
)

// maxNameLength bounds style and template set names.
const maxNameLength = 64

// assetNamePattern accepts names usable as a single path element with no
// extension: letters, digits, '-' and '_'.
var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateAssetName rejects names that are empty, too long or not a plain
// file stem. Returns ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxNameLength:
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAssetName, maxNameLength)
	case !assetNamePattern.MatchString(name):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
