/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import "context"

// DefaultNamespace is the WMI namespace queried when no override is given.
const DefaultNamespace = `ROOT\CIMV2`

// Session is a live handle to the management service. Sessions
// serialize their own queries internally but are not intended to be
// shared across concurrent refresh loops; acquire one per goroutine.
// Close is idempotent.
type Session interface {
	// Query executes a WQL query and returns zero or more rows.
	Query(ctx context.Context, wql string) ([]Row, error)
	// Namespace returns the namespace the session is bound to.
	Namespace() string
	// Close releases the underlying service handle.
	Close() error
}

// SessionProvider abstracts session establishment so that callers can
// inject fakes in tests and alternate transports in tools.
type SessionProvider interface {
	Connect(ctx context.Context) (Session, error)
}

// ConnectionProvider establishes sessions against the local WMI
// service. It owns process-level COM initialization: Connect is safe
// to call repeatedly, init is reference counted, and closing the last
// session tears COM down again.
type ConnectionProvider struct {
	namespace string
	locale    string
}

// ConnectionOption configures a ConnectionProvider.
type ConnectionOption func(*ConnectionProvider)

// WithNamespace overrides the WMI namespace (default ROOT\CIMV2).
func WithNamespace(namespace string) ConnectionOption {
	return func(p *ConnectionProvider) {
		if namespace != "" {
			p.namespace = namespace
		}
	}
}

// WithLocale sets the locale passed to the service on connect, in the
// "MS_409" form WMI expects. Empty means the system default.
func WithLocale(locale string) ConnectionOption {
	return func(p *ConnectionProvider) {
		p.locale = locale
	}
}

// NewConnectionProvider creates a provider with default settings.
func NewConnectionProvider(opts ...ConnectionOption) *ConnectionProvider {
	p := &ConnectionProvider{namespace: DefaultNamespace}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Namespace returns the namespace new sessions will be bound to.
func (p *ConnectionProvider) Namespace() string {
	return p.namespace
}

// Connect returns a live session bound to the provider's namespace.
// Fails with *ConnectionError when COM initialization fails, the
// namespace cannot be reached, or the caller lacks privilege.
func (p *ConnectionProvider) Connect(ctx context.Context) (Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ConnectionError{Namespace: p.namespace, Err: err}
	}
	return p.connect(ctx)
}
