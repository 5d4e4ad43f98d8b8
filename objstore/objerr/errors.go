// Package objerr exposes provider agnostic error types/values for common object store failures.
package objerr

import (
	"context"
	"errors"
	"net"
)

var (
	// ErrUnauthenticated is returned when the remote store rejected the clients credentials.
	ErrUnauthenticated = errors.New("failed to authenticate, please check credentials")

	// ErrUnauthorized is returned when the client is authenticated, but not allowed to perform the given operation.
	ErrUnauthorized = errors.New("client lacks the required permissions to perform this operation")

	// ErrEndpointResolutionFailed is returned when the remote endpoint could not be resolved, this is generally a
	// network/DNS level failure.
	ErrEndpointResolutionFailed = errors.New("failed to resolve the remote endpoint, please check the network settings")
)

// HandleError converts the given error into a provider agnostic error where possible, returning the error unchanged
// when it's not one we interpret.
func HandleError(err error) error {
	if handled := TryHandleError(err); handled != nil {
		return handled
	}

	return err
}

// TryHandleError returns the provider agnostic equivalent of the given error, or <nil> when the error isn't one we
// interpret; context related errors are returned unmodified so that cancellation remains detectable via 'errors.Is'.
func TryHandleError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var dnsError *net.DNSError
	if errors.As(err, &dnsError) {
		return ErrEndpointResolutionFailed
	}

	return nil
}
