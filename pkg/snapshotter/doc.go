/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/

// Package snapshotter captures system state snapshots from the local
// WMI service.
//
// # Overview
//
// The snapshotter orchestrates parallel collection of state sections
// (networking, processes, services, networking devices, processors),
// each on its own session, and produces a structured report that can
// be serialized for analysis or auditing.
//
// # Core Types
//
// Snapshotter: Interface for snapshot collection
//
//	type Snapshotter interface {
//	    Measure(ctx context.Context) error
//	}
//
// SystemSnapshotter: Production implementation for the local machine
//
//	type SystemSnapshotter struct {
//	    Version    string                // Snapshotter version
//	    Provider   wmi.SessionProvider   // Session provider (optional)
//	    Serializer serializer.Serializer // Output serializer (optional)
//	    States     []State               // Sections to capture (optional)
//	}
//
// Report: Captured state with resource header
//
//	type Report struct {
//	    header.Header
//	    Sections map[string]State
//	}
//
// # Usage
//
// Basic snapshot with defaults (stdout JSON):
//
//	s := &snapshotter.SystemSnapshotter{
//	    Version: "v1.0.0",
//	}
//	if err := s.Measure(ctx); err != nil {
//	    log.Fatal(err)
//	}
package snapshotter
