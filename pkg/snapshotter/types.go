/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package snapshotter

import (
	"context"

	"github.com/NidhiHemanth/windows-snapshot/pkg/header"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
)

// FullAPIVersion is the API version stamped on every report.
const FullAPIVersion = "winsnap/v1"

// Snapshotter defines the interface for capturing system state
// snapshots. Implementations gather records from the WMI service and
// serialize the results.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// State is one named section of system state: a group of snapshot
// containers that refresh together on a single session.
type State interface {
	// Name is the section name used in reports and CLI filters.
	Name() string
	// Refresh updates every snapshot in the section.
	Refresh(ctx context.Context, sess wmi.Session) error
	// Refreshers lists the section's snapshot containers.
	Refreshers() []wmi.Refresher
}

// Report is a captured system state snapshot. It contains resource
// identification plus one entry per collected section.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	// Sections contains the collected state, keyed by section name.
	Sections map[string]State `json:"sections" yaml:"sections"`
}

// NewReport creates a Report with an initialized Sections map.
func NewReport() *Report {
	return &Report{
		Sections: make(map[string]State),
	}
}
