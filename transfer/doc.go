// Package transfer implements streaming push/pull of document collections to/from remote object storage.
//
// Collections are addressed by a path of the form '<bucket>/<name>'; the first path segment is the bucket, the
// remainder is the object key which is suffixed with the fixed '.da' extension. A push encodes the documents into
// chunks, accumulates the chunks into write sized blocks and uploads the blocks in order as the parts of a multipart
// upload; the object only becomes visible once the upload is committed, so a failed push never leaves a partial
// object behind. A pull streams the object back through the codec, yielding documents lazily to the caller.
package transfer
