package models

import "errors"

// Sentinel errors for use with errors.Is()
var (
	// ErrEmptyValue indicates a required config value was empty.
	ErrEmptyValue = errors.New("value cannot be empty")

	// ErrBadVersionTag indicates the graph API version tag is not of the
	// form vN or vN.N.
	ErrBadVersionTag = errors.New("unrecognized version tag")
)
