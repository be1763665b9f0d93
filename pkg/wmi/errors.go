/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceRejected indicates WMI refused the query, typically
	// because the class name is unknown to the connected namespace.
	ErrServiceRejected = errors.New("query rejected by the management service")

	// ErrTypeMismatch indicates a row attribute was present but could
	// not be coerced into the declared field type.
	ErrTypeMismatch = errors.New("attribute cannot be coerced to declared field type")

	// ErrUnsupportedPlatform is returned by Connect on operating
	// systems without a WMI service.
	ErrUnsupportedPlatform = errors.New("management service is only available on windows")
)

// ConnectionError reports a failure to initialize COM or to establish
// a session with the management service namespace.
type ConnectionError struct {
	Namespace string
	Err       error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Namespace, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// QueryError reports a failure while executing a class query or while
// decoding one of its rows. Attr is set when the failure is tied to a
// single attribute (type mismatch); it is empty for query-level
// failures such as a rejected class.
type QueryError struct {
	Class string
	Attr  string
	Err   error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("querying %s: attribute %s: %v", e.Class, e.Attr, e.Err)
	}
	return fmt.Sprintf("querying %s: %v", e.Class, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// RefreshError wraps a query failure raised during a snapshot refresh.
// When a RefreshError is returned the previous snapshot contents and
// timestamp are left completely unmodified.
type RefreshError struct {
	Class string
	Err   error
}

// Error implements the error interface.
func (e *RefreshError) Error() string {
	return fmt.Sprintf("refreshing %s: %v", e.Class, e.Err)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *RefreshError) Unwrap() error {
	return e.Err
}
