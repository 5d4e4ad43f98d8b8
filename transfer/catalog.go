package transfer

import (
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/couchbase/docstore/format"
	"github.com/couchbase/docstore/objstore/objcli"
	"github.com/couchbase/docstore/objstore/objerr"
	"github.com/couchbase/docstore/objstore/objval"
	"github.com/couchbase/docstore/ptr"
)

// extensionRegex matches the keys of objects created by a push; anything else under the namespace is ignored.
var extensionRegex = regexp.MustCompile(regexp.QuoteMeta(Extension) + "$")

// ListOptions encapsulates the options available when using the 'List' function.
type ListOptions struct {
	Options

	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client objcli.Client

	// Namespace addresses the namespace being listed, in the format '<bucket>/<prefix>'.
	//
	// NOTE: This attribute is required.
	Namespace string

	// TableWriter, when non-nil, receives a human readable table of the collections found; this is purely
	// presentational and has no effect on the returned names.
	TableWriter io.Writer
}

// List returns the names of the collections stored under the given namespace, in the listing order of the remote
// store. Names are derived by stripping the key prefix and the extension.
func List(opts ListOptions) ([]string, error) {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	bucket, prefix, err := ParsePath(opts.Namespace)
	if err != nil {
		return nil, err
	}

	var objects []*objval.ObjectAttrs

	fn := func(attrs *objval.ObjectAttrs) error {
		if !attrs.IsDir() {
			objects = append(objects, attrs)
		}

		return nil
	}

	err = opts.Client.IterateObjects(opts.Context, objcli.IterateObjectsOptions{
		Bucket:  bucket,
		Prefix:  prefix,
		Include: []*regexp.Regexp{extensionRegex},
		Func:    fn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate objects: %w", err)
	}

	names := make([]string, 0, len(objects))

	for _, object := range objects {
		names = append(names, strings.TrimSuffix(path.Base(object.Key), Extension))
	}

	if opts.TableWriter != nil {
		renderTable(opts.TableWriter, opts.Client.Provider(), bucket, prefix, objects)
	}

	return names, nil
}

// renderTable writes a human readable summary of the given objects; write failures are purposefully ignored, the
// table is a presentation side channel with no effect on correctness.
func renderTable(writer io.Writer, provider objval.Provider, bucket, namespace string, objects []*objval.ObjectAttrs) {
	fmt.Fprintf(writer, "You have %d document collections in bucket %s%s under the namespace %q\n",
		len(objects), provider.ToScheme(), bucket, namespace)

	table := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(table, "Name\tLast Modified\tSize")

	for _, object := range objects {
		var lastModified string
		if object.LastModified != nil {
			lastModified = object.LastModified.Format(time.RFC3339)
		}

		fmt.Fprintf(table, "%s\t%s\t%s\n",
			strings.TrimSuffix(path.Base(object.Key), Extension),
			lastModified,
			format.Bytes(uint64(ptr.From(object.Size))),
		)
	}

	_ = table.Flush()
}

// DeleteOptions encapsulates the options available when using the 'Delete' function.
type DeleteOptions struct {
	Options

	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client objcli.Client

	// Path addresses the collection being deleted, in the format '<bucket>/<name>'.
	//
	// NOTE: This attribute is required.
	Path string

	// MissingOK indicates that deleting a collection which does not exist should not be treated as an error.
	MissingOK bool
}

// Delete removes the collection addressed by the path in 'opts', returning a boolean indicating whether a collection
// was found and deleted.
//
// NOTE: Only the "absent object" condition is interpreted locally; any other store side failure propagates unchanged.
func Delete(opts DeleteOptions) (bool, error) {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	bucket, key, err := ParsePath(opts.Path)
	if err != nil {
		return false, err
	}

	key += Extension

	_, err = opts.Client.GetObjectAttrs(opts.Context, objcli.GetObjectAttrsOptions{Bucket: bucket, Key: key})

	if objerr.IsNotFoundError(err) {
		if opts.MissingOK {
			return false, nil
		}

		return false, err
	}

	if err != nil {
		return false, fmt.Errorf("failed to get object attributes: %w", err)
	}

	err = opts.Client.DeleteObjects(opts.Context, objcli.DeleteObjectsOptions{Bucket: bucket, Keys: []string{key}})
	if err != nil {
		return false, fmt.Errorf("failed to delete object: %w", err)
	}

	return true, nil
}
