package transfer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/docstore/objstore/objcli"
	"github.com/couchbase/docstore/objstore/objval"
)

func TestNewUploader(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	uploader, err := NewUploader(UploaderOptions{Client: client, Bucket: "bucket", Key: "key"})
	require.NoError(t, err)
	require.NotEmpty(t, uploader.UploadID())
	require.False(t, uploader.stopped)
}

func TestUploaderUploadAndCommit(t *testing.T) {
	var (
		client = objcli.NewTestClient(t, objval.ProviderAWS)
		sizes  []int64
	)

	uploader, err := NewUploader(UploaderOptions{
		Client:          client,
		Bucket:          "bucket",
		Key:             "key",
		OnBlockComplete: func(size int64) { sizes = append(sizes, size) },
	})
	require.NoError(t, err)

	require.NoError(t, uploader.Upload([]byte("Hello, ")))
	require.NoError(t, uploader.Upload([]byte("World!")))
	require.NoError(t, uploader.Commit())

	require.Equal(t, []int64{7, 6}, sizes)

	// Parts are assembled in upload order, and the staging keys cleaned up
	require.Len(t, client.Buckets["bucket"], 1)
	require.Equal(t, []byte("Hello, World!"), client.Buckets["bucket"]["key"].Body)
}

func TestUploaderObjectNotVisibleUntilCommit(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	uploader, err := NewUploader(UploaderOptions{Client: client, Bucket: "bucket", Key: "key"})
	require.NoError(t, err)

	require.NoError(t, uploader.Upload([]byte("Hello, World!")))
	require.NotContains(t, client.Buckets["bucket"], "key")

	require.NoError(t, uploader.Commit())
	require.Contains(t, client.Buckets["bucket"], "key")
}

func TestUploaderAbort(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	uploader, err := NewUploader(UploaderOptions{Client: client, Bucket: "bucket", Key: "key"})
	require.NoError(t, err)

	require.NoError(t, uploader.Upload([]byte("Hello, World!")))
	require.NoError(t, uploader.Abort())

	// All staged parts should have been cleaned up
	require.Empty(t, client.Buckets["bucket"])
}

func TestUploaderAbortAfterCommitIsANoop(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	uploader, err := NewUploader(UploaderOptions{Client: client, Bucket: "bucket", Key: "key"})
	require.NoError(t, err)

	require.NoError(t, uploader.Upload([]byte("Hello, World!")))
	require.NoError(t, uploader.Commit())

	require.ErrorIs(t, uploader.Abort(), ErrUploaderAlreadyStopped)
	require.Contains(t, client.Buckets["bucket"], "key")
}

func TestUploaderUploadAfterStop(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	uploader, err := NewUploader(UploaderOptions{Client: client, Bucket: "bucket", Key: "key"})
	require.NoError(t, err)
	require.NoError(t, uploader.Commit())

	require.ErrorIs(t, uploader.Upload([]byte("Hello, World!")), ErrUploaderAlreadyStopped)
	require.ErrorIs(t, uploader.Commit(), ErrUploaderAlreadyStopped)
}

func TestUploaderExceededMaxPartCount(t *testing.T) {
	client := objcli.NewTestClient(t, objval.ProviderAWS)

	uploader, err := NewUploader(UploaderOptions{Client: client, Bucket: "bucket", Key: "key"})
	require.NoError(t, err)

	uploader.parts = make([]objval.Part, MaxUploadParts)

	require.ErrorIs(t, uploader.Upload([]byte("Hello, World!")), ErrUploaderExceededMaxPartCount)
}
