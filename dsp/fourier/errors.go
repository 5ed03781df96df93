package fourier

import "errors"

var (
	// ErrLengthMismatch is returned when a buffer length does not match
	// the plan size.
	ErrLengthMismatch = errors.New("fourier: buffer length does not match plan size")

	// ErrAliasedBuffers is returned when dst and src share backing
	// memory. The decimation writes dst while src is still being read.
	ErrAliasedBuffers = errors.New("fourier: dst and src must not alias")
)
