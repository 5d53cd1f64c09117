package assets

import (
	"fmt"
	"regexp"
)

// maxAssetNameLength bounds style and template names.
const maxAssetNameLength = 64

// assetNamePattern accepts names such as "default", "board-brief", "style_2".
var assetNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateAssetName checks that name can be joined to an asset directory as
// a bare file name. Separators, dots, and anything outside letters, digits,
// '-' and '_' are rejected with ErrInvalidAssetName.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > maxAssetNameLength:
		return fmt.Errorf("%w: %d chars, max %d", ErrInvalidAssetName, len(name), maxAssetNameLength)
	case !assetNamePattern.MatchString(name):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
