package codec

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Decoder lazily converts an encoded byte stream back into a document stream; it implements 'docval.Stream' meaning
// consumption drives reads from the underlying stream incrementally.
type Decoder[T any] struct {
	reader      *bufio.Reader
	closer      io.Closer
	protocol    Protocol
	compression Compression
}

// NewDecoder creates a new decoder for the given byte stream, reading and validating the stream header before
// returning; the protocol/compression used for decoding are the ones recorded in the header.
//
// NOTE: Upon success the decoder assumes ownership of the given stream, which will be closed via the decoders 'Close'
// function; upon failure, closing the stream remains the callers responsibility.
func NewDecoder[T any](stream io.ReadCloser) (*Decoder[T], error) {
	reader := bufio.NewReader(stream)

	header := make([]byte, headerSize)

	_, err := io.ReadFull(reader, header)
	if err != nil {
		return nil, fmt.Errorf("failed to read stream header: %w", errors.Join(ErrInvalidStreamHeader, err))
	}

	protocol, compression, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	decoder := &Decoder[T]{
		reader:      reader,
		closer:      stream,
		protocol:    protocol,
		compression: compression,
	}

	return decoder, nil
}

// Protocol returns the serialization format recorded in the stream header.
func (d *Decoder[T]) Protocol() Protocol {
	return d.protocol
}

// Compression returns the compression algorithm recorded in the stream header.
func (d *Decoder[T]) Compression() Compression {
	return d.compression
}

// Next returns the next decoded document, returning 'io.EOF' once the stream is exhausted; corrupt or truncated
// streams are surfaced as a 'CodecError' at the point of failure.
func (d *Decoder[T]) Next() (T, error) {
	var zero T

	length, err := binary.ReadUvarint(d.reader)

	// A clean end of stream between frames is an exhausted sequence, not an error
	if errors.Is(err, io.EOF) {
		return zero, io.EOF
	}

	if err != nil {
		return zero, &CodecError{Op: "decode", Err: err}
	}

	if length > maxFrameSize {
		return zero, &CodecError{Op: "decode", Err: fmt.Errorf("frame length %d exceeds maximum", length)}
	}

	data := make([]byte, length)

	_, err = io.ReadFull(d.reader, data)
	if err != nil {
		return zero, &CodecError{Op: "decode", Err: fmt.Errorf("truncated frame: %w", err)}
	}

	data, err = decompress(data, d.compression)
	if err != nil {
		return zero, &CodecError{Op: "decode", Err: err}
	}

	var doc T

	err = unmarshal(data, &doc, d.protocol)
	if err != nil {
		return zero, &CodecError{Op: "decode", Err: err}
	}

	return doc, nil
}

// Close releases the underlying byte stream; it must be called when the document stream is exhausted or abandoned.
func (d *Decoder[T]) Close() error {
	return d.closer.Close()
}
