package transfer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/couchbase/docstore/objstore/objcli"
	"github.com/couchbase/docstore/objstore/objcli/objaws"
	"github.com/couchbase/docstore/objstore/objval"
)

// MaxUploadParts is the hard limit on the number of blocks that can be uploaded by an 'Uploader'.
const MaxUploadParts = objaws.MaxUploadParts

var (
	// ErrUploaderExceededMaxPartCount is returned if the user attempts to upload more than 'MaxUploadParts' blocks.
	ErrUploaderExceededMaxPartCount = errors.New("exceeded maximum number of upload parts")

	// ErrUploaderAlreadyStopped is returned when using an uploader which has already been committed/aborted.
	ErrUploaderAlreadyStopped = errors.New("upload has already been committed or aborted")
)

// BlockCompleteFunc is a callback which is run after each block has been uploaded; size is the size of the block in
// bytes. The callback is a presentation side channel and has no effect on the upload itself.
type BlockCompleteFunc func(size int64)

// UploaderOptions encapsulates the options available when creating an 'Uploader'.
type UploaderOptions struct {
	Options

	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client objcli.Client

	// Bucket is the bucket to upload the object to.
	//
	// NOTE: This attribute is required.
	Bucket string

	// Key is the key for the object being uploaded.
	//
	// NOTE: This attribute is required.
	Key string

	// Public indicates the completed object should be publicly readable; interpretation is delegated to the store.
	Public bool

	// OnBlockComplete is run after successfully uploading each block.
	OnBlockComplete BlockCompleteFunc
}

// Uploader writes an ordered sequence of blocks to a remote object as the parts of a multipart upload; the object
// becomes visible atomically when the upload is committed.
//
// Blocks are uploaded strictly sequentially, a block is fully written to the remote store before control returns to
// the caller; object storage write latency dominates, so no internal pipelining is performed.
type Uploader struct {
	opts    UploaderOptions
	id      string
	parts   []objval.Part
	stopped bool
}

// NewUploader creates a new uploader, creating the backing multipart upload in the process.
//
// NOTE: Either 'Commit' or 'Abort' should be called to avoid leaking an in-progress upload.
func NewUploader(opts UploaderOptions) (*Uploader, error) {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	id, err := opts.Client.CreateMultipartUpload(opts.Context, objcli.CreateMultipartUploadOptions{
		Bucket: opts.Bucket,
		Key:    opts.Key,
		Public: opts.Public,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create multipart upload: %w", err)
	}

	return &Uploader{opts: opts, id: id}, nil
}

// UploadID returns the upload id created by the uploader.
//
// NOTE: Depending on the underlying client, this upload id may be empty.
func (u *Uploader) UploadID() string {
	return u.id
}

// Upload the given block as the next part of the upload, blocking until it has been fully written.
func (u *Uploader) Upload(block []byte) error {
	if u.stopped {
		return ErrUploaderAlreadyStopped
	}

	if len(u.parts) >= MaxUploadParts {
		return ErrUploaderExceededMaxPartCount
	}

	part, err := u.opts.Client.UploadPart(u.opts.Context, objcli.UploadPartOptions{
		Bucket:   u.opts.Bucket,
		UploadID: u.id,
		Key:      u.opts.Key,
		Number:   len(u.parts) + 1,
		Body:     bytes.NewReader(block),
	})
	if err != nil {
		return fmt.Errorf("failed to upload part: %w", err)
	}

	u.parts = append(u.parts, part)

	if u.opts.OnBlockComplete != nil {
		u.opts.OnBlockComplete(int64(len(block)))
	}

	return nil
}

// Commit the upload, atomically making the object visible at its key.
func (u *Uploader) Commit() error {
	if u.stopped {
		return ErrUploaderAlreadyStopped
	}

	err := u.opts.Client.CompleteMultipartUpload(u.opts.Context, objcli.CompleteMultipartUploadOptions{
		Bucket:   u.opts.Bucket,
		UploadID: u.id,
		Key:      u.opts.Key,
		Parts:    u.parts,
	})
	if err != nil {
		return fmt.Errorf("failed to complete multipart upload: %w", err)
	}

	u.stopped = true

	return nil
}

// Abort the upload, cleaning up any parts written so far; aborting after a successful commit is a no-op, making
// 'defer uploader.Abort()' a safe pattern for ensuring cleanup on all failure paths.
func (u *Uploader) Abort() error {
	if u.stopped {
		return ErrUploaderAlreadyStopped
	}

	u.stopped = true

	err := u.opts.Client.AbortMultipartUpload(u.opts.Context, objcli.AbortMultipartUploadOptions{
		Bucket:   u.opts.Bucket,
		UploadID: u.id,
		Key:      u.opts.Key,
	})
	if err != nil {
		return fmt.Errorf("failed to abort multipart upload: %w", err)
	}

	return nil
}
