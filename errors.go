package natural

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor or a query receives
	// an argument outside its domain: a negative value, a string containing
	// non-digit characters, a base less than 2, or a nil prime cache.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOverflow is returned when an operation requires the native int64
	// value of a number whose magnitude exceeds the int64 range.
	ErrOverflow = errors.New("int64 overflow")
)
