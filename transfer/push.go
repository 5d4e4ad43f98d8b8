package transfer

import (
	"errors"
	"fmt"
	"io"

	"github.com/couchbase/docstore/codec"
	"github.com/couchbase/docstore/docval"
	"github.com/couchbase/docstore/log"
	"github.com/couchbase/docstore/objstore/objcli"
)

// PushOptions encapsulates the options available when using the 'Push'/'PushStream' functions.
type PushOptions struct {
	Options

	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client objcli.Client

	// Path addresses the collection being uploaded, in the format '<bucket>/<name>'.
	//
	// NOTE: This attribute is required.
	Path string

	// Protocol is the serialization format used for each document.
	Protocol codec.Protocol

	// Compression is the compression algorithm applied to each document.
	Compression codec.Compression

	// Public indicates the uploaded collection should be publicly readable; interpretation is delegated to the store.
	Public bool

	// OnBlockComplete is run after each block has been uploaded, and may be used for progress reporting.
	OnBlockComplete BlockCompleteFunc
}

// Push uploads the given document collection to remote storage, creating or fully overwriting the object addressed by
// the path in 'opts'.
func Push[T any](docs []T, opts PushOptions) error {
	return PushStream(docval.NewSliceStream(docs), opts)
}

// PushStream uploads the documents yielded by the given stream to remote storage; the stream is iterated exactly
// once, and the whole collection is never materialized in memory.
//
// If any step fails the in-progress upload is aborted and the object is not left partially visible under its key; the
// caller retains ownership of the provided stream.
func PushStream[T any](stream docval.Stream[T], opts PushOptions) error {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	bucket, key, err := ParsePath(opts.Path)
	if err != nil {
		return err
	}

	key += Extension

	logger := log.NewWrappedLogger(opts.Logger)

	uploader, err := NewUploader(UploaderOptions{
		Options:         opts.Options,
		Client:          opts.Client,
		Bucket:          bucket,
		Key:             key,
		Public:          opts.Public,
		OnBlockComplete: opts.OnBlockComplete,
	})
	if err != nil {
		return fmt.Errorf("failed to begin upload: %w", err)
	}
	defer uploader.Abort() //nolint:errcheck

	var (
		encoder = codec.NewEncoder(stream, codec.EncoderOptions{Protocol: opts.Protocol, Compression: opts.Compression})
		buffer  = NewBlockBuffer(opts.BlockSize)
	)

	for {
		chunk, err := encoder.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("failed to encode document stream: %w", err)
		}

		block := buffer.Accumulate(chunk)
		if block == nil {
			continue
		}

		logger.Debugf("flushing %d byte block to '%s/%s'", len(block), bucket, key)

		if err := uploader.Upload(block); err != nil {
			return fmt.Errorf("failed to upload block: %w", err)
		}
	}

	if block := buffer.Flush(); len(block) != 0 {
		if err := uploader.Upload(block); err != nil {
			return fmt.Errorf("failed to upload final block: %w", err)
		}
	}

	if err := uploader.Commit(); err != nil {
		return fmt.Errorf("failed to commit upload: %w", err)
	}

	return nil
}
