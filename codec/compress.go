package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// The zstd implementation is designed around reusable coders; both are safe for concurrent use when using the
// 'EncodeAll'/'DecodeAll' interfaces.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	zstdEncoder, err = zstd.NewWriter(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create zstd encoder: %v", err))
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic(fmt.Sprintf("failed to create zstd decoder: %v", err))
	}
}

// compress the given data using the provided algorithm.
func compress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		return compressGzip(data)
	case CompressionZstd:
		return zstdEncoder.EncodeAll(data, nil), nil
	case CompressionLZ4:
		return compressLZ4(data)
	}

	return nil, fmt.Errorf("unsupported compression %q", compression)
}

// decompress data which was compressed using the provided algorithm.
func decompress(data []byte, compression Compression) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return data, nil
	case CompressionGzip:
		return decompressGzip(data)
	case CompressionZstd:
		return zstdDecoder.DecodeAll(data, nil)
	case CompressionLZ4:
		return decompressLZ4(data)
	}

	return nil, fmt.Errorf("unsupported compression %q", compression)
}

func compressGzip(data []byte) ([]byte, error) {
	var buffer bytes.Buffer

	writer := gzip.NewWriter(&buffer)

	_, err := writer.Write(data)
	if err == nil {
		err = writer.Close()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	return buffer.Bytes(), nil
}

func decompressGzip(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create reader: %w", err)
	}
	defer reader.Close()

	decompressed, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}

	return decompressed, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	var buffer bytes.Buffer

	writer := lz4.NewWriter(&buffer)

	_, err := writer.Write(data)
	if err == nil {
		err = writer.Close()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to compress data: %w", err)
	}

	return buffer.Bytes(), nil
}

func decompressLZ4(data []byte) ([]byte, error) {
	decompressed, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data: %w", err)
	}

	return decompressed, nil
}
