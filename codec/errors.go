package codec

import (
	"errors"
	"fmt"
)

// ErrInvalidStreamHeader is returned when decoding data which does not begin with a valid stream header; generally
// this means the remote object was not created by this library, or has been corrupted.
var ErrInvalidStreamHeader = errors.New("invalid or unsupported stream header")

// CodecError is returned when a document could not be encoded/decoded; for the decode path this usually indicates a
// corrupt or truncated stream.
type CodecError struct {
	Op  string
	Err error
}

// Error implements the 'error' interface.
func (e *CodecError) Error() string {
	return fmt.Sprintf("failed to %s document: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *CodecError) Unwrap() error {
	return e.Err
}

// IsCodecError returns a boolean indicating whether the given error is a 'CodecError'.
func IsCodecError(err error) bool {
	var codecError *CodecError
	return errors.As(err, &codecError)
}
