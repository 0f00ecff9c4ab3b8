package morebutton

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a configuration, item or catalog failed validation.
	ErrValidation = errors.New("validation error")

	// ErrAssetNotFound indicates a catalog is missing a required asset.
	ErrAssetNotFound = errors.New("asset not found")
)
