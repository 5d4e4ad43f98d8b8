// Package objaws provides an implementation of 'objcli.Client' for use with AWS S3.
package objaws

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/couchbase/docstore/objstore/objcli"
	"github.com/couchbase/docstore/objstore/objval"
	"github.com/couchbase/docstore/ptr"
)

// Client implements the 'objcli.Client' interface allowing the creation/management of objects stored in AWS S3.
type Client struct {
	serviceAPI serviceAPI
	logger     *slog.Logger
}

var _ objcli.Client = (*Client)(nil)

// ClientOptions encapsulates the options for creating a new AWS Client.
type ClientOptions struct {
	// ServiceAPI is the is the minimal subset of functions that we use from the AWS SDK.
	//
	// NOTE: Required
	ServiceAPI serviceAPI

	// Logger is the passed logger which implements a custom Log method
	Logger *slog.Logger
}

// defaults fills any missing attributes to a sane default.
func (c *ClientOptions) defaults() {
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// NewClient returns a new client which uses the given 'serviceAPI', in general this should be the one created using
// the 's3.NewFromConfig' function exposed by the SDK.
func NewClient(options ClientOptions) *Client {
	// Fill out any missing fields with the sane defaults
	options.defaults()

	client := Client{
		serviceAPI: options.ServiceAPI,
		logger:     options.Logger,
	}

	return &client
}

func (c *Client) Provider() objval.Provider {
	return objval.ProviderAWS
}

func (c *Client) GetObject(ctx context.Context, opts objcli.GetObjectOptions) (*objval.Object, error) {
	input := &s3.GetObjectInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	resp, err := c.serviceAPI.GetObject(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := objval.ObjectAttrs{
		Key:          opts.Key,
		Size:         resp.ContentLength,
		LastModified: resp.LastModified,
	}

	object := &objval.Object{
		ObjectAttrs: attrs,
		Body:        resp.Body,
	}

	return object, nil
}

func (c *Client) GetObjectAttrs(ctx context.Context, opts objcli.GetObjectAttrsOptions) (*objval.ObjectAttrs, error) {
	input := &s3.HeadObjectInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	resp, err := c.serviceAPI.HeadObject(ctx, input)
	if err != nil {
		return nil, handleError(input.Bucket, input.Key, err)
	}

	attrs := &objval.ObjectAttrs{
		Key:          opts.Key,
		ETag:         resp.ETag,
		Size:         resp.ContentLength,
		LastModified: resp.LastModified,
	}

	return attrs, nil
}

func (c *Client) DeleteObjects(ctx context.Context, opts objcli.DeleteObjectsOptions) error {
	for start, end := 0, PageSize; start < len(opts.Keys); start, end = start+PageSize, end+PageSize {
		err := c.deleteObjects(ctx, opts.Bucket, opts.Keys[start:min(end, len(opts.Keys))]...)
		if err != nil {
			return err
		}
	}

	return nil
}

// deleteObjects performs a batched delete operation for a single page (<=1000) of keys.
func (c *Client) deleteObjects(ctx context.Context, bucket string, keys ...string) error {
	identifiers := make([]types.ObjectIdentifier, 0, len(keys))

	for _, key := range keys {
		identifiers = append(identifiers, types.ObjectIdentifier{Key: ptr.To(key)})
	}

	input := &s3.DeleteObjectsInput{
		Bucket: ptr.To(bucket),
		Delete: &types.Delete{
			Quiet:   ptr.To(true),
			Objects: identifiers,
		},
	}

	resp, err := c.serviceAPI.DeleteObjects(ctx, input)
	if err != nil {
		return handleError(input.Bucket, nil, err)
	}

	for _, err := range resp.Errors {
		converted := &smithy.GenericAPIError{
			Code:    ptr.From(err.Code),
			Message: ptr.From(err.Message),
		}

		// Deleting an object which does not exist is not an error
		if isKeyNotFound(converted) {
			c.logger.Debug("ignoring not found error for missing key", "key", ptr.From(err.Key))
			continue
		}

		return handleError(input.Bucket, err.Key, converted)
	}

	return nil
}

func (c *Client) IterateObjects(ctx context.Context, opts objcli.IterateObjectsOptions) error {
	if opts.Include != nil && opts.Exclude != nil {
		return objcli.ErrIncludeAndExcludeAreMutuallyExclusive
	}

	input := &s3.ListObjectsV2Input{
		Bucket: ptr.To(opts.Bucket),
		Prefix: ptr.To(opts.Prefix),
	}

	paginator := s3.NewListObjectsV2Paginator(c.serviceAPI, input)

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return handleError(input.Bucket, nil, fmt.Errorf("failed to get next page: %w", err))
		}

		err = c.handlePage(page, opts.Include, opts.Exclude, opts.Func)
		if err != nil {
			return err
		}
	}

	return nil
}

// handlePage iterates over the objects in the given page executing the given function for each object which has not
// been explicitly ignored by the user.
func (c *Client) handlePage(
	page *s3.ListObjectsV2Output,
	include, exclude []*regexp.Regexp,
	fn objcli.IterateFunc,
) error {
	for _, object := range page.Contents {
		if objcli.ShouldIgnore(*object.Key, include, exclude) {
			continue
		}

		attrs := objval.ObjectAttrs{
			Key:          *object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
		}

		// If the caller has returned an error, stop iteration, and return control to them
		if err := fn(&attrs); err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) CreateMultipartUpload(ctx context.Context, opts objcli.CreateMultipartUploadOptions) (string, error) {
	input := &s3.CreateMultipartUploadInput{
		Bucket: ptr.To(opts.Bucket),
		Key:    ptr.To(opts.Key),
	}

	if opts.Public {
		input.ACL = types.ObjectCannedACLPublicRead
	}

	resp, err := c.serviceAPI.CreateMultipartUpload(ctx, input)
	if err != nil {
		return "", handleError(input.Bucket, input.Key, err)
	}

	return *resp.UploadId, nil
}

func (c *Client) UploadPart(ctx context.Context, opts objcli.UploadPartOptions) (objval.Part, error) {
	size, err := objcli.SeekerLength(opts.Body)
	if err != nil {
		return objval.Part{}, fmt.Errorf("failed to determine body length: %w", err)
	}

	input := &s3.UploadPartInput{
		Body:          opts.Body,
		Bucket:        ptr.To(opts.Bucket),
		ContentLength: ptr.To(size),
		Key:           ptr.To(opts.Key),
		PartNumber:    ptr.To(int32(opts.Number)),
		UploadId:      ptr.To(opts.UploadID),
	}

	output, err := c.serviceAPI.UploadPart(ctx, input)
	if err != nil {
		return objval.Part{}, handleError(input.Bucket, input.Key, err)
	}

	return objval.Part{ID: *output.ETag, Number: opts.Number, Size: size}, nil
}

func (c *Client) CompleteMultipartUpload(ctx context.Context, opts objcli.CompleteMultipartUploadOptions) error {
	converted := make([]types.CompletedPart, len(opts.Parts))

	for index, part := range opts.Parts {
		converted[index] = types.CompletedPart{ETag: ptr.To(part.ID), PartNumber: ptr.To(int32(part.Number))}
	}

	input := &s3.CompleteMultipartUploadInput{
		Bucket:          ptr.To(opts.Bucket),
		Key:             ptr.To(opts.Key),
		UploadId:        ptr.To(opts.UploadID),
		MultipartUpload: &types.CompletedMultipartUpload{Parts: converted},
	}

	_, err := c.serviceAPI.CompleteMultipartUpload(ctx, input)

	return handleError(input.Bucket, input.Key, err)
}

func (c *Client) AbortMultipartUpload(ctx context.Context, opts objcli.AbortMultipartUploadOptions) error {
	input := &s3.AbortMultipartUploadInput{
		Bucket:   ptr.To(opts.Bucket),
		Key:      ptr.To(opts.Key),
		UploadId: ptr.To(opts.UploadID),
	}

	_, err := c.serviceAPI.AbortMultipartUpload(ctx, input)
	if err != nil && !isNoSuchUpload(err) {
		return handleError(input.Bucket, input.Key, err)
	}

	return nil
}

// Close is a no-op for AWS as the SDK does not hold open resources.
func (c *Client) Close() error {
	return nil
}
