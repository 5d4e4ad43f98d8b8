package transfer

import (
	"context"

	"github.com/couchbase/docstore/log"
	"github.com/couchbase/docstore/objstore/objcli/objaws"
)

// DefaultBlockSize is the default capacity of the block buffer; the value is the minimum size AWS accepts for a
// non-final part of a multipart upload, larger values trade memory for fewer network requests.
const DefaultBlockSize = objaws.MinUploadSize

// Options contains common options for the push/pull/list/delete operations.
type Options struct {
	// Context is the 'context.Context' that can be used to cancel all requests.
	Context context.Context

	// BlockSize is the capacity of the block buffer in bytes; a block is flushed to the remote object once it reaches
	// this size. Since a document frame is never split across blocks, a block may exceed the capacity by at most one
	// frame.
	BlockSize int64

	// Logger is the logger used for reporting progress information.
	Logger log.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *Options) defaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}

	if o.BlockSize <= 0 {
		o.BlockSize = DefaultBlockSize
	}
}
