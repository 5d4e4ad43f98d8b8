// Package codec converts typed document streams into streams of encoded byte chunks and back.
//
// The encoded representation is a small self-describing header chunk followed by one frame per document; each frame
// is the compressed serialized document prefixed with its length as an unsigned varint. Since the header records the
// protocol/compression used at encode time, decoding requires no out-of-band configuration.
package codec

import (
	"fmt"
)

const (
	// streamVersion is the version of the encoded stream layout, recorded in the header.
	streamVersion = 1

	// headerSize is the size of the header chunk; magic, version, protocol then compression.
	headerSize = 7

	// maxFrameSize bounds the size of a single document frame, a frame length beyond this is treated as stream
	// corruption rather than an allocation request.
	maxFrameSize = 256 * 1024 * 1024
)

// streamMagic identifies an encoded document stream; these values are wire constants.
var streamMagic = [4]byte{'D', 'O', 'C', 'S'}

// Protocol identifies the serialization format used for each document in a stream.
type Protocol uint8

const (
	// ProtocolJSON serializes documents as JSON.
	ProtocolJSON Protocol = iota + 1

	// ProtocolCBOR serializes documents as CBOR.
	ProtocolCBOR
)

// String returns a human readable representation of the protocol.
func (p Protocol) String() string {
	switch p {
	case ProtocolJSON:
		return "json"
	case ProtocolCBOR:
		return "cbor"
	}

	return fmt.Sprintf("unknown(%d)", uint8(p))
}

// valid returns a boolean indicating whether the protocol is a known value.
func (p Protocol) valid() bool {
	return p == ProtocolJSON || p == ProtocolCBOR
}

// Compression identifies the compression algorithm applied to each document frame.
type Compression uint8

const (
	// CompressionNone leaves frames uncompressed.
	CompressionNone Compression = iota

	// CompressionGzip compresses frames with gzip.
	CompressionGzip

	// CompressionZstd compresses frames with zstd.
	CompressionZstd

	// CompressionLZ4 compresses frames with lz4.
	CompressionLZ4
)

// String returns a human readable representation of the compression algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	}

	return fmt.Sprintf("unknown(%d)", uint8(c))
}

// valid returns a boolean indicating whether the compression is a known value.
func (c Compression) valid() bool {
	return c <= CompressionLZ4
}

// appendHeader appends the header chunk for the given tags to the provided buffer.
func appendHeader(buffer []byte, protocol Protocol, compression Compression) []byte {
	buffer = append(buffer, streamMagic[:]...)
	buffer = append(buffer, streamVersion, byte(protocol), byte(compression))

	return buffer
}

// parseHeader extracts the protocol/compression tags from the given header chunk.
func parseHeader(header []byte) (Protocol, Compression, error) {
	if len(header) != headerSize || string(header[:4]) != string(streamMagic[:]) {
		return 0, 0, ErrInvalidStreamHeader
	}

	if header[4] != streamVersion {
		return 0, 0, fmt.Errorf("%w: unsupported version %d", ErrInvalidStreamHeader, header[4])
	}

	var (
		protocol    = Protocol(header[5])
		compression = Compression(header[6])
	)

	if !protocol.valid() || !compression.valid() {
		return 0, 0, fmt.Errorf("%w: unknown protocol/compression tags", ErrInvalidStreamHeader)
	}

	return protocol, compression, nil
}
