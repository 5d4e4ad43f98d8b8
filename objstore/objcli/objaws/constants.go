package objaws

const (
	// MinUploadSize is the minimum size of a non-final part in a multipart upload, a hard limit enforced by AWS.
	MinUploadSize = 1024 * 1024 * 5

	// MaxUploadParts is the hard limit on the number of parts in a multipart upload enforced by AWS.
	MaxUploadParts = 10_000

	// PageSize is the maximum number of keys which may be deleted using a single 'DeleteObjects' request.
	PageSize = 1_000
)
