package probatix

import "errors"

var (
	// ErrInvalidParameter is returned by the parameter functions and the
	// filter constructors when a capacity, error rate, size or hash count
	// is outside its valid domain. No filter value is ever produced from
	// an invalid parameter set.
	ErrInvalidParameter = errors.New("probatix: invalid parameter")

	// ErrBufferTooSmall is returned when a caller-supplied buffer cannot
	// hold the bytes required by the derived filter parameters.
	ErrBufferTooSmall = errors.New("probatix: buffer too small")
)
