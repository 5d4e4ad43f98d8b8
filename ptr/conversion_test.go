package ptr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTo(t *testing.T) {
	value := To(42)
	require.NotNil(t, value)
	require.Equal(t, 42, *value)
}

func TestFrom(t *testing.T) {
	require.Equal(t, 42, From(To(42)))
}

func TestFromNil(t *testing.T) {
	require.Zero(t, From[int](nil))
	require.Empty(t, From[string](nil))
}
