package transfer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/docstore/objstore/objcli"
	"github.com/couchbase/docstore/objstore/objerr"
	"github.com/couchbase/docstore/objstore/objval"
)

func TestList(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	paths := []string{
		"bucket/ns/beta",
		"bucket/ns/alpha",
		"bucket/other/gamma",
	}

	for _, path := range paths {
		require.NoError(t, Push([]document{{ID: 1}}, PushOptions{Client: client, Path: path}))
	}

	// An unrelated object under the namespace should not be reported as a collection
	client.Buckets["bucket"]["ns/readme.txt"] = &objval.TestObject{
		ObjectAttrs: objval.ObjectAttrs{Key: "ns/readme.txt"},
		Body:        []byte("not a collection"),
	}

	names, err := List(ListOptions{Client: client, Namespace: "bucket/ns/"})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta"}, names)
}

func TestListEmptyNamespace(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	names, err := List(ListOptions{Client: client, Namespace: "bucket/ns/"})
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestListInvalidNamespace(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	_, err := List(ListOptions{Client: client, Namespace: "no-separator"})
	require.True(t, IsInvalidPathError(err))
}

func TestListRendersTable(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	require.NoError(t, Push([]document{{ID: 1}}, PushOptions{Client: client, Path: "bucket/ns/alpha"}))
	require.NoError(t, Push([]document{{ID: 2}}, PushOptions{Client: client, Path: "bucket/ns/beta"}))

	var table bytes.Buffer

	names, err := List(ListOptions{Client: client, Namespace: "bucket/ns/", TableWriter: &table})
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "beta"}, names)

	output := table.String()
	require.Contains(t, output, `You have 2 document collections in bucket s3://bucket under the namespace "ns/"`)
	require.Contains(t, output, "alpha")
	require.Contains(t, output, "beta")
}

func TestDelete(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	require.NoError(t, Push([]document{{ID: 1}}, PushOptions{Client: client, Path: "bucket/collection"}))

	deleted, err := Delete(DeleteOptions{Client: client, Path: "bucket/collection"})
	require.NoError(t, err)
	require.True(t, deleted)
	require.NotContains(t, client.Buckets["bucket"], "collection"+Extension)
}

func TestDeleteMissing(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	deleted, err := Delete(DeleteOptions{Client: client, Path: "bucket/missing"})
	require.True(t, objerr.IsNotFoundError(err))
	require.False(t, deleted)
}

func TestDeleteMissingOK(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	require.NoError(t, Push([]document{{ID: 1}}, PushOptions{Client: client, Path: "bucket/collection"}))

	// Repeated deletion with MissingOK is idempotent
	for _, expected := range []bool{true, false, false} {
		deleted, err := Delete(DeleteOptions{Client: client, Path: "bucket/collection", MissingOK: true})
		require.NoError(t, err)
		require.Equal(t, expected, deleted)
	}
}

func TestDeleteInvalidPath(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	_, err := Delete(DeleteOptions{Client: client, Path: "no-separator"})
	require.True(t, IsInvalidPathError(err))
}
