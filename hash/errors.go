package hash

import (
	"errors"
	"fmt"
)

// configurationError is an error returned when a hasher is constructed or
// finalized with parameters outside the ranges fixed by the LSH standard.
// It allows a function caller to differentiate invalid configurations from
// unexpected program errors.
type configurationError struct {
	error
}

func (e configurationError) Unwrap() error {
	return e.error
}

// configurationErrorf constructs a new configurationError
func configurationErrorf(msg string, args ...interface{}) error {
	return &configurationError{
		error: fmt.Errorf(msg, args...),
	}
}

// IsConfigurationError checks if the input error is of a configurationError type
func IsConfigurationError(err error) bool {
	var target *configurationError
	return errors.As(err, &target)
}

// misuseError is an error returned when the hasher API is called out of its
// permitted sequence, such as absorbing more data after finalization without
// an intervening Reset. It flags a contract violation by the caller, never a
// data-dependent failure.
type misuseError struct {
	error
}

func (e misuseError) Unwrap() error {
	return e.error
}

// misuseErrorf constructs a new misuseError
func misuseErrorf(msg string, args ...interface{}) error {
	return &misuseError{
		error: fmt.Errorf(msg, args...),
	}
}

// IsMisuseError checks if the input error is of a misuseError type
func IsMisuseError(err error) bool {
	var target *misuseError
	return errors.As(err, &target)
}
