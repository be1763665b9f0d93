/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package wmi

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Refresher is the uniform contract shared by all snapshot containers,
// regardless of their record type.
type Refresher interface {
	Class() string
	Refresh(ctx context.Context, sess Session) error
}

// Snapshot holds the last successfully captured record sequence for
// one WMI class together with the wall-clock time it was captured.
// A zero-value-free constructor is required: use NewSnapshot.
//
// Refresh replaces records and timestamp atomically; a failed refresh
// leaves both untouched. Concurrent readers always observe a record
// slice paired with its own timestamp.
type Snapshot[R any, P Decodable[R]] struct {
	mu          sync.RWMutex
	records     []R
	lastUpdated time.Time
	opts        []QueryOption
}

// NewSnapshot creates an empty snapshot container for the record type R.
// Query options (e.g. WithSkipInvalid) apply to every Refresh.
func NewSnapshot[R any, P Decodable[R]](opts ...QueryOption) *Snapshot[R, P] {
	return &Snapshot[R, P]{opts: opts}
}

// Class returns the WMI class name this snapshot is bound to.
func (s *Snapshot[R, P]) Class() string {
	var zero R
	return P(&zero).Class()
}

// Refresh queries the class and, on success, replaces the record
// sequence and timestamp in a single atomic swap. On failure it
// returns a *RefreshError and leaves the previous snapshot unmodified.
func (s *Snapshot[R, P]) Refresh(ctx context.Context, sess Session) error {
	records, err := Query[R, P](ctx, sess, s.opts...)
	if err != nil {
		refreshTotal.WithLabelValues(s.Class(), "error").Inc()
		return &RefreshError{Class: s.Class(), Err: err}
	}

	captured := time.Now()

	s.mu.Lock()
	s.records = records
	s.lastUpdated = captured
	s.mu.Unlock()

	refreshTotal.WithLabelValues(s.Class(), "success").Inc()
	return nil
}

// Records returns the current record sequence. The returned slice is
// replaced wholesale by Refresh and must be treated as read-only.
// Returns nil while the snapshot is empty.
func (s *Snapshot[R, P]) Records() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// LastUpdated returns the capture time of the current records, or the
// zero time while the snapshot is empty.
func (s *Snapshot[R, P]) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

// Populated reports whether at least one refresh has succeeded.
func (s *Snapshot[R, P]) Populated() bool {
	return !s.LastUpdated().IsZero()
}

// Len returns the number of records in the current snapshot.
func (s *Snapshot[R, P]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// snapshotView is the serialized shape of a snapshot.
type snapshotView[R any] struct {
	Class       string     `json:"class" yaml:"class"`
	LastUpdated *time.Time `json:"last_updated,omitempty" yaml:"last_updated,omitempty"`
	Records     []R        `json:"records" yaml:"records"`
}

func (s *Snapshot[R, P]) view() snapshotView[R] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := snapshotView[R]{Class: s.Class(), Records: s.records}
	if !s.lastUpdated.IsZero() {
		t := s.lastUpdated
		v.LastUpdated = &t
	}
	if v.Records == nil {
		v.Records = []R{}
	}
	return v
}

// MarshalJSON implements json.Marshaler.
func (s *Snapshot[R, P]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

// MarshalYAML implements yaml.Marshaler.
func (s *Snapshot[R, P]) MarshalYAML() (any, error) {
	return s.view(), nil
}

// RefreshAll refreshes each container in order on the given session.
// The first failure aborts the sequence; containers already refreshed
// keep their new state, the rest keep their previous state.
func RefreshAll(ctx context.Context, sess Session, refreshers ...Refresher) error {
	for _, r := range refreshers {
		if err := r.Refresh(ctx, sess); err != nil {
			return err
		}
	}
	return nil
}
