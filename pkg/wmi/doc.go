/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package wmi provides typed, point-in-time access to the Windows
// Management Instrumentation service.
//
// # Overview
//
// The package is built from three pieces:
//
//   - ConnectionProvider: owns COM initialization and hands out live
//     Sessions bound to a WMI namespace (ROOT\CIMV2 by default).
//   - Query: executes "SELECT * FROM <class>" against a Session and
//     decodes each returned row into a fixed, strongly typed record.
//   - Snapshot: pairs an ordered record slice with the wall-clock time
//     it was captured, and replaces both atomically on Refresh.
//
// # Records
//
// A record is a flat struct mirroring one WMI class. Every field is a
// pointer so that attributes the service omits (or reports as null)
// decode to nil rather than an error. Records declare their class name
// and a field-by-name decode table:
//
//	type Win32_IP4RouteTable struct {
//	    Destination *string
//	    Metric1     *int32
//	    NextHop     *string
//	}
//
//	func (Win32_IP4RouteTable) Class() string { return "Win32_IP4RouteTable" }
//
//	func (r *Win32_IP4RouteTable) DecodeRow(row wmi.Row) error {
//	    return wmi.DecodeFields(row,
//	        wmi.Str("Destination", &r.Destination),
//	        wmi.I32("Metric1", &r.Metric1),
//	        wmi.Str("NextHop", &r.NextHop),
//	    )
//	}
//
// # Usage
//
//	provider := wmi.NewConnectionProvider()
//	sess, err := provider.Connect(ctx)
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	routes := wmi.NewSnapshot[Win32_IP4RouteTable]()
//	if err := routes.Refresh(ctx, sess); err != nil {
//	    return err
//	}
//	for _, r := range routes.Records() {
//	    ...
//	}
//
// # Error Handling
//
// Failures are typed: *ConnectionError for session establishment,
// *QueryError for query execution and decoding, *RefreshError for
// snapshot refreshes. Query errors carry a sentinel reachable with
// errors.Is: ErrServiceRejected when WMI refuses the class or query,
// ErrTypeMismatch when a present attribute cannot be coerced into its
// declared field type. A failed Refresh never modifies the previous
// snapshot contents.
//
// By default a type mismatch aborts the whole query so that a snapshot
// never silently drops records. Callers that prefer partial results
// must opt in with WithSkipInvalid, which skips the offending record
// and logs a warning.
//
// # Concurrency
//
// All calls are synchronous and blocking. Sessions serialize their own
// queries but are not meant to be shared across concurrent refresh
// loops; give each goroutine its own Session. Snapshot is safe for
// concurrent use: readers always observe a record slice together with
// the timestamp it was captured at.
package wmi
