package docval

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceStream(t *testing.T) {
	stream := NewSliceStream([]int{1, 2, 3})

	for _, expected := range []int{1, 2, 3} {
		doc, err := stream.Next()
		require.NoError(t, err)
		require.Equal(t, expected, doc)
	}

	_, err := stream.Next()
	require.ErrorIs(t, err, io.EOF)

	// Exhausted streams remain exhausted
	_, err = stream.Next()
	require.ErrorIs(t, err, io.EOF)

	require.NoError(t, stream.Close())
}

func TestCollect(t *testing.T) {
	docs, err := Collect(NewSliceStream([]string{"a", "b"}))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, docs)
}

func TestCollectEmpty(t *testing.T) {
	docs, err := Collect(NewSliceStream([]string{}))
	require.NoError(t, err)
	require.Empty(t, docs)
	require.NotNil(t, docs)
}

type failingStream struct {
	docs   []string
	index  int
	closed bool
}

func (f *failingStream) Next() (string, error) {
	if f.index >= len(f.docs) {
		return "", assert.AnError
	}

	doc := f.docs[f.index]
	f.index++

	return doc, nil
}

func (f *failingStream) Close() error {
	f.closed = true
	return nil
}

func TestCollectPropagatesFailureAndCloses(t *testing.T) {
	stream := &failingStream{docs: []string{"a"}}

	_, err := Collect(stream)
	require.ErrorIs(t, err, assert.AnError)
	require.True(t, stream.closed)
}
