package objcli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/couchbase/docstore/objstore/objerr"
	"github.com/couchbase/docstore/objstore/objval"
	"github.com/couchbase/docstore/ptr"
	"github.com/couchbase/docstore/testutil"
)

// TestClient implementation of the 'Client' interface which stores state in memory, and can be used to avoid having
// to manually mock a client during unit testing.
type TestClient struct {
	t        *testing.T
	lock     sync.RWMutex
	provider objval.Provider

	// Buckets is the in memory state maintained by the client. Internally, access is guarded by a mutex, however,
	// it's not safe/recommended to access this attribute whilst a test is running; it should only be used to inspect
	// state (to perform assertions) once testing is complete.
	Buckets objval.TestBuckets
}

var _ Client = (*TestClient)(nil)

// NewTestClient returns a new test client, which has no buckets/objects.
func NewTestClient(t *testing.T, provider objval.Provider) *TestClient {
	return &TestClient{
		t:        t,
		provider: provider,
		Buckets:  make(objval.TestBuckets),
	}
}

func (t *TestClient) Provider() objval.Provider {
	return t.provider
}

func (t *TestClient) GetObject(_ context.Context, opts GetObjectOptions) (*objval.Object, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	return &objval.Object{
		ObjectAttrs: object.ObjectAttrs,
		Body:        io.NopCloser(bytes.NewReader(object.Body)),
	}, nil
}

func (t *TestClient) GetObjectAttrs(_ context.Context, opts GetObjectAttrsOptions) (*objval.ObjectAttrs, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	object, err := t.getObjectRLocked(opts.Bucket, opts.Key)
	if err != nil {
		return nil, err
	}

	return &object.ObjectAttrs, nil
}

func (t *TestClient) DeleteObjects(_ context.Context, opts DeleteObjectsOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	b := t.getBucketLocked(opts.Bucket)

	for _, key := range opts.Keys {
		delete(b, key)
	}

	return nil
}

func (t *TestClient) IterateObjects(_ context.Context, opts IterateObjectsOptions) error {
	if opts.Include != nil && opts.Exclude != nil {
		return ErrIncludeAndExcludeAreMutuallyExclusive
	}

	t.lock.RLock()

	b, ok := t.Buckets[opts.Bucket]
	if !ok {
		t.lock.RUnlock()
		return nil
	}

	// Take a copy of the bucket. This stops a deadlock that happens if fn is trying to perform an operation which
	// requires a write lock
	cpy := maps.Clone(b)

	t.lock.RUnlock()

	// Iterate in lexicographic order, matching the behavior of the supported cloud providers
	keys := maps.Keys(cpy)
	sort.Strings(keys)

	for _, key := range keys {
		if !strings.HasPrefix(key, opts.Prefix) || ShouldIgnore(key, opts.Include, opts.Exclude) {
			continue
		}

		attrs := cpy[key].ObjectAttrs

		// If the caller has returned an error, stop iteration, and return control to them
		if err := opts.Func(&attrs); err != nil {
			return err
		}
	}

	return nil
}

func (t *TestClient) CreateMultipartUpload(_ context.Context, _ CreateMultipartUploadOptions) (string, error) {
	return uuid.NewString(), nil
}

func (t *TestClient) UploadPart(_ context.Context, opts UploadPartOptions) (objval.Part, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	size, err := SeekerLength(opts.Body)
	if err != nil {
		return objval.Part{}, err
	}

	part := objval.Part{
		ID:     t.putObjectLocked(opts.Bucket, partKey(opts.UploadID, opts.Key), opts.Body),
		Number: opts.Number,
		Size:   size,
	}

	return part, nil
}

func (t *TestClient) CompleteMultipartUpload(_ context.Context, opts CompleteMultipartUploadOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	buffer := &bytes.Buffer{}

	for _, part := range opts.Parts {
		object, err := t.getObjectRLocked(opts.Bucket, part.ID)
		if err != nil {
			return err
		}

		buffer.Write(object.Body)
	}

	_ = t.putObjectLocked(opts.Bucket, opts.Key, bytes.NewReader(buffer.Bytes()))

	t.deleteKeysLocked(opts.Bucket, partPrefix(opts.UploadID, opts.Key))

	return nil
}

func (t *TestClient) AbortMultipartUpload(_ context.Context, opts AbortMultipartUploadOptions) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.deleteKeysLocked(opts.Bucket, partPrefix(opts.UploadID, opts.Key))

	return nil
}

func (t *TestClient) Close() error {
	return nil
}

func (t *TestClient) getBucketLocked(bucket string) objval.TestBucket {
	_, ok := t.Buckets[bucket]
	if !ok {
		t.Buckets[bucket] = make(objval.TestBucket)
	}

	return t.Buckets[bucket]
}

// NOTE: Buckets are automatically created by the test client when they're required, so this function returns an
// object not found error if either the bucket/object don't exist.
func (t *TestClient) getObjectRLocked(bucket, key string) (*objval.TestObject, error) {
	b, ok := t.Buckets[bucket]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "object", Name: key}
	}

	o, ok := b[key]
	if !ok {
		return nil, &objerr.NotFoundError{Type: "object", Name: key}
	}

	return o, nil
}

func (t *TestClient) putObjectLocked(bucket, key string, body io.ReadSeeker) string {
	var (
		now  = time.Now()
		data = testutil.ReadAll(t.t, body)
	)

	attrs := objval.ObjectAttrs{
		Key:          key,
		ETag:         ptr.To(strings.ReplaceAll(uuid.NewString(), "-", "")),
		Size:         ptr.To(int64(len(data))),
		LastModified: &now,
	}

	t.getBucketLocked(bucket)[key] = &objval.TestObject{
		ObjectAttrs: attrs,
		Body:        data,
	}

	return attrs.Key
}

func (t *TestClient) deleteKeysLocked(bucket, prefix string) {
	b := t.getBucketLocked(bucket)

	for key := range b {
		if strings.HasPrefix(key, prefix) {
			delete(b, key)
		}
	}
}

// partKey returns a key which should be used for an in-progress multipart upload. This function should be used to
// generate key names since they'll be prefixed with '<key>-mpu-' allowing efficient cleanup upon completion.
func partKey(id, key string) string {
	return path.Join(path.Dir(key), fmt.Sprintf("%s-mpu-%s-%s", path.Base(key), id, uuid.New()))
}

// partPrefix returns the prefix which will be used for all parts in the given upload for the provided key.
func partPrefix(id, key string) string {
	return fmt.Sprintf("%s-mpu-%s", key, id)
}
