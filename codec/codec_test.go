package codec

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchbase/docstore/docval"
)

type testDoc struct {
	ID   int    `json:"id"`
	Body string `json:"body"`
}

// encodeAll drains the given encoder concatenating all the chunks it produces.
func encodeAll[T any](t *testing.T, encoder *Encoder[T]) []byte {
	var buffer bytes.Buffer

	for {
		chunk, err := encoder.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		require.NoError(t, err)

		buffer.Write(chunk)
	}

	return buffer.Bytes()
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		opts EncoderOptions
	}{
		{name: "JSONUncompressed", opts: EncoderOptions{Protocol: ProtocolJSON}},
		{name: "JSONGzip", opts: EncoderOptions{Protocol: ProtocolJSON, Compression: CompressionGzip}},
		{name: "CBORZstd", opts: EncoderOptions{Protocol: ProtocolCBOR, Compression: CompressionZstd}},
		{name: "CBORLZ4", opts: EncoderOptions{Protocol: ProtocolCBOR, Compression: CompressionLZ4}},
	}

	docs := []testDoc{{ID: 1, Body: "foo"}, {ID: 2, Body: "bar"}, {ID: 3, Body: "baz"}}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := encodeAll(t, NewEncoder(docval.NewSliceStream(docs), tc.opts))

			decoder, err := NewDecoder[testDoc](io.NopCloser(bytes.NewReader(encoded)))
			require.NoError(t, err)

			require.Equal(t, tc.opts.Protocol, decoder.Protocol())
			require.Equal(t, tc.opts.Compression, decoder.Compression())

			decoded, err := docval.Collect[testDoc](decoder)
			require.NoError(t, err)
			require.Equal(t, docs, decoded)
		})
	}
}

func TestEncodeDecodeRoundTripEmpty(t *testing.T) {
	encoded := encodeAll(t, NewEncoder(docval.NewSliceStream([]testDoc{}), EncoderOptions{}))
	require.Len(t, encoded, headerSize)

	decoder, err := NewDecoder[testDoc](io.NopCloser(bytes.NewReader(encoded)))
	require.NoError(t, err)

	decoded, err := docval.Collect[testDoc](decoder)
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestEncoderDefaultsToJSON(t *testing.T) {
	encoder := NewEncoder(docval.NewSliceStream([]testDoc{}), EncoderOptions{})
	require.Equal(t, ProtocolJSON, encoder.opts.Protocol)
	require.Equal(t, CompressionNone, encoder.opts.Compression)
}

func TestEncoderPropagatesStreamFailure(t *testing.T) {
	encoder := NewEncoder[testDoc](erroringStream{}, EncoderOptions{})

	// The header chunk is produced before touching the stream
	_, err := encoder.Next()
	require.NoError(t, err)

	_, err = encoder.Next()
	require.ErrorIs(t, err, assert.AnError)
	require.False(t, IsCodecError(err))
}

type erroringStream struct{}

func (e erroringStream) Next() (testDoc, error) { return testDoc{}, assert.AnError }
func (e erroringStream) Close() error           { return nil }

func TestNewDecoderInvalidHeader(t *testing.T) {
	cases := []struct {
		name   string
		header []byte
	}{
		{name: "Empty", header: nil},
		{name: "Truncated", header: []byte("DOC")},
		{name: "BadMagic", header: []byte("JUNK\x01\x01\x00")},
		{name: "UnsupportedVersion", header: []byte("DOCS\x2a\x01\x00")},
		{name: "UnknownProtocol", header: []byte("DOCS\x01\x2a\x00")},
		{name: "UnknownCompression", header: []byte("DOCS\x01\x01\x2a")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDecoder[testDoc](io.NopCloser(bytes.NewReader(tc.header)))
			require.ErrorIs(t, err, ErrInvalidStreamHeader)
		})
	}
}

func TestDecoderTruncatedFrame(t *testing.T) {
	encoded := encodeAll(t, NewEncoder(docval.NewSliceStream([]testDoc{{ID: 1, Body: "foo"}}), EncoderOptions{}))

	decoder, err := NewDecoder[testDoc](io.NopCloser(bytes.NewReader(encoded[:len(encoded)-1])))
	require.NoError(t, err)

	_, err = decoder.Next()
	require.True(t, IsCodecError(err))
}

func TestDecoderCorruptFrame(t *testing.T) {
	encoded := encodeAll(
		t,
		NewEncoder(
			docval.NewSliceStream([]testDoc{{ID: 1, Body: "foo"}}),
			EncoderOptions{Compression: CompressionGzip},
		),
	)

	// Mangle the compressed payload, leaving the header/length prefix intact
	encoded[len(encoded)-1] ^= 0xff
	encoded[len(encoded)-2] ^= 0xff

	decoder, err := NewDecoder[testDoc](io.NopCloser(bytes.NewReader(encoded)))
	require.NoError(t, err)

	_, err = decoder.Next()
	require.True(t, IsCodecError(err))
}

type closeTracker struct {
	io.Reader
	closed bool
}

func (c *closeTracker) Close() error {
	c.closed = true
	return nil
}

func TestDecoderCloseReleasesStream(t *testing.T) {
	encoded := encodeAll(t, NewEncoder(docval.NewSliceStream([]testDoc{{ID: 1, Body: "foo"}}), EncoderOptions{}))

	tracker := &closeTracker{Reader: bytes.NewReader(encoded)}

	decoder, err := NewDecoder[testDoc](tracker)
	require.NoError(t, err)

	// Abandon the stream without draining it
	require.NoError(t, decoder.Close())
	require.True(t, tracker.closed)
}

func TestProtocolString(t *testing.T) {
	require.Equal(t, "json", ProtocolJSON.String())
	require.Equal(t, "cbor", ProtocolCBOR.String())
	require.Equal(t, "unknown(42)", Protocol(42).String())
}

func TestCompressionString(t *testing.T) {
	require.Equal(t, "none", CompressionNone.String())
	require.Equal(t, "gzip", CompressionGzip.String())
	require.Equal(t, "zstd", CompressionZstd.String())
	require.Equal(t, "lz4", CompressionLZ4.String())
	require.Equal(t, "unknown(42)", Compression(42).String())
}
