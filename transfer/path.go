package transfer

import (
	"errors"
	"fmt"
	"strings"
)

// Extension is the extension given to all objects created by a push; only objects with this extension are treated as
// document collections when listing.
const Extension = ".da"

// InvalidPathError is returned when a collection path is missing the bucket separator.
type InvalidPathError struct {
	Path string
}

// Error implements the 'error' interface.
func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("path '%s' should be of the format <bucket>/<name>", e.Path)
}

// IsInvalidPathError returns a boolean indicating whether the given error is an 'InvalidPathError'.
func IsInvalidPathError(err error) bool {
	var invalidPathError *InvalidPathError
	return errors.As(err, &invalidPathError)
}

// ParsePath splits the given collection path into its bucket/key pair; the split must be performed identically by
// every operation so that they all agree on which bucket is being targeted.
func ParsePath(path string) (string, string, error) {
	bucket, key, found := strings.Cut(path, "/")
	if !found || bucket == "" || key == "" {
		return "", "", &InvalidPathError{Path: path}
	}

	return bucket, key, nil
}
