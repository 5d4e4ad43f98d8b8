// Package docval exposes the value types for document collections; most notably the lazy document stream.
package docval

import (
	"errors"
	"io"
)

// Stream is a lazy, single-pass, non-restartable sequence of documents.
//
// Each call to 'Next' either yields the next document, returns 'io.EOF' to signal exhaustion, or returns the failure
// which terminated the sequence. 'Close' must be called when the stream is exhausted or abandoned to release the
// underlying resources; it is safe to call more than once.
type Stream[T any] interface {
	Next() (T, error)
	Close() error
}

// sliceStream adapts a materialized collection into a 'Stream'.
type sliceStream[T any] struct {
	docs  []T
	index int
}

// NewSliceStream returns a stream which yields the given documents in order.
func NewSliceStream[T any](docs []T) Stream[T] {
	return &sliceStream[T]{docs: docs}
}

func (s *sliceStream[T]) Next() (T, error) {
	if s.index >= len(s.docs) {
		var zero T
		return zero, io.EOF
	}

	doc := s.docs[s.index]
	s.index++

	return doc, nil
}

func (s *sliceStream[T]) Close() error {
	return nil
}

// Collect drains the given stream into a materialized collection, closing it once done.
//
// NOTE: The stream is closed even when draining fails part way through.
func Collect[T any](stream Stream[T]) ([]T, error) {
	defer stream.Close() //nolint:errcheck

	docs := make([]T, 0)

	for {
		doc, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return docs, nil
		}

		if err != nil {
			return nil, err
		}

		docs = append(docs, doc)
	}
}
