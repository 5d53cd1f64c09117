package assets

import "errors"

var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")

	// ErrInvalidAssetName rejects names that are not bare identifiers.
	ErrInvalidAssetName = errors.New("invalid asset name")

	// ErrInvalidBasePath rejects asset directories that cannot be used.
	ErrInvalidBasePath = errors.New("invalid base path")
	ErrAssetRead       = errors.New("failed to read asset")

	// ErrPathTraversal reports a resolved file outside its asset directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
