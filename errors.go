package propmods

import "errors"

// Sentinel errors for block construction and argument parsing.
var (
	ErrEmptyBlock          = errors.New("propmods: block name is empty")
	ErrInvalidArgumentKind = errors.New("propmods: invalid argument kind")
)

// IsInvalidArgument checks if err is an invalid argument kind error.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgumentKind)
}

// IsEmptyBlock checks if err reports a missing block name.
func IsEmptyBlock(err error) bool {
	return errors.Is(err, ErrEmptyBlock)
}
