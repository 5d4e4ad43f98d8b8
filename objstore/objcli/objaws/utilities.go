package objaws

import (
	"errors"

	"github.com/aws/smithy-go"

	"github.com/couchbase/docstore/objstore/objerr"
	"github.com/couchbase/docstore/ptr"
)

// handleError converts an error relating to accessing an object via its key into a user friendly error where
// possible.
func handleError(bucket, key *string, err error) error {
	var apiErr smithy.APIError
	if err == nil || !errors.As(err, &apiErr) {
		return objerr.HandleError(err)
	}

	switch apiErr.ErrorCode() {
	case "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return objerr.ErrUnauthenticated
	case "AccessDenied":
		return objerr.ErrUnauthorized
	// 'HeadObject' returns a bare 404 with the code 'NotFound' rather than 'NoSuchKey'
	case "NoSuchKey", "NotFound":
		if key == nil {
			key = ptr.To("<empty key name>")
		}

		return &objerr.NotFoundError{Type: "key", Name: *key}
	case "NoSuchBucket":
		if bucket == nil {
			bucket = ptr.To("<empty bucket name>")
		}

		return &objerr.NotFoundError{Type: "bucket", Name: *bucket}
	}

	// This isn't a code we interpret, return the complete error
	return err
}

// isKeyNotFound returns a boolean indicating whether the given error means the underlying key was not found.
func isKeyNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchKey" || apiErr.ErrorCode() == "NotFound")
}

// isNoSuchUpload returns a boolean indicating whether the given error is a 'NoSuchUpload' error; localstack is known
// to return a clashing 'NotFound' error code.
func isNoSuchUpload(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && (apiErr.ErrorCode() == "NoSuchUpload" || apiErr.ErrorCode() == "NotFound")
}
