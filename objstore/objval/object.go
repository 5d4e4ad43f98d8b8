// Package objval exposes the value types used/exposed by the object store layer.
package objval

import (
	"io"
	"time"
)

// ObjectAttrs represents the attributes usually attached to an object in the cloud.
type ObjectAttrs struct {
	// Key is the identifier for the object; a unique path.
	Key string

	// ETag is the HTTP entity tag for the object, each cloud provider uses this differently with different rules also
	// applying to different scenarios (e.g. multipart uploads).
	//
	// NOTE: Not populated during object iteration.
	ETag *string

	// Size is the size or content length of the object in bytes.
	//
	// NOTE: May be conditionally populated by 'GetObject', for example when a chunked response is returned, this
	// attribute will be <nil>.
	Size *int64

	// LastModified is the time the object was last updated (or created).
	//
	// NOTE: The semantics of this attribute may differ between cloud providers (e.g. a change of metadata might bump
	// the last modified time).
	LastModified *time.Time
}

// IsDir returns a boolean indicating whether these attributes represent a synthetic directory; when 'IsDir' returns
// 'true', only the 'Key' attribute will be populated.
func (o *ObjectAttrs) IsDir() bool {
	return o.Size == nil && o.ETag == nil && o.LastModified == nil
}

// Object represents an object stored in the cloud, simply the attributes and its body.
type Object struct {
	ObjectAttrs

	// This body will generally be a HTTP response body; it should be read once, and closed to avoid resource leaks.
	Body io.ReadCloser
}

// Part represents a single part of an in-progress multipart upload.
type Part struct {
	// ID is the id/identifier generated by the cloud provider when the part was uploaded, and is generally an etag or
	// checksum of the parts body.
	ID string

	// Number is the number assigned to the part by the caller, and is used to order parts upon upload completion.
	Number int

	// Size is the size of the part in bytes.
	Size int64
}

// TestBuckets represents a number of buckets, and is only used by the 'TestClient' to store state in memory.
type TestBuckets map[string]TestBucket

// TestBucket represents a bucket and is only used by the 'TestClient' to store objects in memory.
type TestBucket map[string]*TestObject

// TestObject represents an object and is only used by the 'TestClient'.
type TestObject struct {
	ObjectAttrs
	Body []byte
}
