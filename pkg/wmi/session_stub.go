/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

//go:build !windows

package wmi

import "context"

// connect fails on platforms without a WMI service. The typed core
// (Query, Snapshot) still works everywhere against injected Sessions.
func (p *ConnectionProvider) connect(_ context.Context) (Session, error) {
	return nil, &ConnectionError{Namespace: p.namespace, Err: ErrUnsupportedPlatform}
}
