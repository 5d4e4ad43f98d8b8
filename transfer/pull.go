package transfer

import (
	"fmt"

	"github.com/couchbase/docstore/codec"
	"github.com/couchbase/docstore/docval"
	"github.com/couchbase/docstore/objstore/objcli"
)

// PullOptions encapsulates the options available when using the 'Pull'/'PullStream' functions.
type PullOptions struct {
	Options

	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client objcli.Client

	// Path addresses the collection being downloaded, in the format '<bucket>/<name>'.
	//
	// NOTE: This attribute is required.
	Path string
}

// PullStream opens the remote object addressed by the path in 'opts' and returns its documents as a lazy stream;
// consuming a document from the stream drives at most one incremental read+decode step against the remote object.
//
// The returned stream must be closed once exhausted or abandoned to release the underlying read stream; decode
// failures are surfaced at the point of consumption, not eagerly.
func PullStream[T any](opts PullOptions) (docval.Stream[T], error) {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	bucket, key, err := ParsePath(opts.Path)
	if err != nil {
		return nil, err
	}

	object, err := opts.Client.GetObject(opts.Context, objcli.GetObjectOptions{
		Bucket: bucket,
		Key:    key + Extension,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	decoder, err := codec.NewDecoder[T](object.Body)
	if err != nil {
		object.Body.Close()
		return nil, fmt.Errorf("failed to open document stream: %w", err)
	}

	return decoder, nil
}

// Pull downloads the collection addressed by the path in 'opts', materializing it in memory.
func Pull[T any](opts PullOptions) ([]T, error) {
	stream, err := PullStream[T](opts)
	if err != nil {
		return nil, err
	}

	return docval.Collect(stream)
}
