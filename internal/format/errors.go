package format

import "errors"

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrSignatureMismatch indicates the magic bytes did not match.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrUnsupportedVersion indicates a header version this package does not understand.
	ErrUnsupportedVersion = errors.New("format: unsupported version")
)
