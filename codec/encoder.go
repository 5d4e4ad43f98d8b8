package codec

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/couchbase/docstore/docval"
)

// EncoderOptions encapsulates the options available when creating an 'Encoder'.
type EncoderOptions struct {
	// Protocol is the serialization format used for each document.
	Protocol Protocol

	// Compression is the compression algorithm applied to each document frame.
	Compression Compression
}

// defaults fills any missing attributes to a sane default.
func (e *EncoderOptions) defaults() {
	if e.Protocol == 0 {
		e.Protocol = ProtocolJSON
	}
}

// Encoder lazily converts a document stream into a sequence of encoded chunks; the first chunk is always the stream
// header, each subsequent chunk is a single encoded document frame.
type Encoder[T any] struct {
	stream        docval.Stream[T]
	opts          EncoderOptions
	headerEmitted bool
}

// NewEncoder creates a new encoder for the given document stream.
//
// NOTE: The encoder does not assume ownership of the stream, closing it remains the callers responsibility.
func NewEncoder[T any](stream docval.Stream[T], opts EncoderOptions) *Encoder[T] {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	return &Encoder[T]{stream: stream, opts: opts}
}

// Next returns the next encoded chunk, returning 'io.EOF' once the underlying stream is exhausted.
//
// NOTE: Failures from the underlying stream are propagated unchanged; failures to serialize/compress a document are
// returned as a 'CodecError'.
func (e *Encoder[T]) Next() ([]byte, error) {
	if !e.headerEmitted {
		e.headerEmitted = true
		return appendHeader(make([]byte, 0, headerSize), e.opts.Protocol, e.opts.Compression), nil
	}

	doc, err := e.stream.Next()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	if err != nil {
		return nil, err
	}

	data, err := marshal(doc, e.opts.Protocol)
	if err != nil {
		return nil, &CodecError{Op: "encode", Err: err}
	}

	data, err = compress(data, e.opts.Compression)
	if err != nil {
		return nil, &CodecError{Op: "encode", Err: err}
	}

	frame := binary.AppendUvarint(make([]byte, 0, len(data)+binary.MaxVarintLen64), uint64(len(data)))

	return append(frame, data...), nil
}
