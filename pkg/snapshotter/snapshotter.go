/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/NidhiHemanth/windows-snapshot/pkg/hardware"
	"github.com/NidhiHemanth/windows-snapshot/pkg/header"
	"github.com/NidhiHemanth/windows-snapshot/pkg/operatingsystem"
	"github.com/NidhiHemanth/windows-snapshot/pkg/serializer"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
)

// DefaultStates returns the full set of state sections: operating
// system networking, processes, and services, plus hardware networking
// devices and processors. Query options apply to every snapshot.
func DefaultStates(opts ...wmi.QueryOption) []State {
	return []State{
		operatingsystem.NewNetworking(opts...),
		operatingsystem.NewProcesses(opts...),
		operatingsystem.NewServices(opts...),
		hardware.NewNetworkingDevices(opts...),
		hardware.NewProcessors(opts...),
	}
}

// SystemSnapshotter captures system state from the local WMI service.
// It refreshes each state section in parallel on its own session, then
// serializes the resulting report.
type SystemSnapshotter struct {
	// Version is the snapshotter version.
	Version string

	// Provider hands out WMI sessions. If nil, the default connection
	// provider is used.
	Provider wmi.SessionProvider

	// Serializer is the serializer to use for output. If nil, a stdout
	// JSON serializer is used.
	Serializer serializer.Serializer

	// States are the sections to capture. If nil, DefaultStates() is used.
	States []State
}

// Measure captures all state sections and serializes the report.
// Sections refresh in parallel, each on its own session; if any
// section fails, the whole capture returns an error.
func (s *SystemSnapshotter) Measure(ctx context.Context) error {
	if s.Provider == nil {
		s.Provider = wmi.NewConnectionProvider()
	}
	if s.States == nil {
		s.States = DefaultStates()
	}

	slog.Debug("starting system snapshot", slog.Int("sections", len(s.States)))

	start := time.Now()
	defer func() {
		snapshotCollectionDuration.Observe(time.Since(start).Seconds())
	}()

	report := NewReport()
	report.Init(header.KindSnapshot, FullAPIVersion, s.Version)
	if host, err := os.Hostname(); err == nil {
		report.Metadata["source-host"] = host
	}

	var mu sync.Mutex

	// The errgroup context cancels sibling sections on first failure;
	// the original ctx is kept for serialization.
	g, gctx := errgroup.WithContext(ctx)

	for _, state := range s.States {
		state := state
		g.Go(func() error {
			sectionStart := time.Now()
			defer func() {
				snapshotSectionDuration.WithLabelValues(state.Name()).Observe(time.Since(sectionStart).Seconds())
			}()

			slog.Debug("collecting section", slog.String("section", state.Name()))

			sess, err := s.Provider.Connect(gctx)
			if err != nil {
				slog.Error("failed to connect",
					slog.String("section", state.Name()),
					slog.String("error", err.Error()))
				return fmt.Errorf("failed to connect for section %s: %w", state.Name(), err)
			}
			defer func() { _ = sess.Close() }()

			if err := state.Refresh(gctx, sess); err != nil {
				slog.Error("failed to collect section",
					slog.String("section", state.Name()),
					slog.String("error", err.Error()))
				return fmt.Errorf("failed to collect section %s: %w", state.Name(), err)
			}

			mu.Lock()
			report.Sections[state.Name()] = state
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		snapshotCollectionTotal.WithLabelValues("error").Inc()
		return err
	}

	snapshotCollectionTotal.WithLabelValues("success").Inc()
	snapshotSectionCount.Set(float64(len(report.Sections)))

	slog.Debug("snapshot capture complete", slog.Int("sections", len(report.Sections)))

	if s.Serializer == nil {
		s.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := s.Serializer.Serialize(ctx, report); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}
