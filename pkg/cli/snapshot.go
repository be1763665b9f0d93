/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NidhiHemanth/windows-snapshot/pkg/serializer"
	"github.com/NidhiHemanth/windows-snapshot/pkg/snapshotter"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a system state snapshot",
		Description: `Capture a snapshot of Windows system state including:
  - IPv4 routing tables and persisted routes
  - Network clients, connections, protocols, and domains
  - Running processes and threads
  - Installed services
  - Network adapters and their TCP/IP configurations
  - Processors

The snapshot can be output in JSON, YAML, or table format, written to
stdout, a file, or published to an OCI registry.

# Examples

Capture everything to stdout as JSON:
  winsnap snapshot

Capture selected sections to a YAML file:
  winsnap snapshot --section networking --section services -f yaml -o state.yaml

Publish to a registry:
  winsnap snapshot -o oci://ghcr.io/org/snapshots:v1.0.0

Watch mode, one capture every minute:
  winsnap snapshot --watch --interval 1m`,
		Flags: []cli.Flag{
			namespaceFlag,
			&cli.StringSliceFlag{
				Name:  "section",
				Usage: "limit the capture to named sections (can be repeated)",
			},
			&cli.BoolFlag{
				Name:  "skip-invalid",
				Usage: "drop records that fail to decode instead of aborting the query",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "capture snapshots repeatedly until interrupted",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "capture interval in watch mode",
				Value: 30 * time.Second,
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			var queryOpts []wmi.QueryOption
			if cmd.Bool("skip-invalid") {
				queryOpts = append(queryOpts, wmi.WithSkipInvalid())
			}

			states, err := filterStates(snapshotter.DefaultStates(queryOpts...), cmd.StringSlice("section"))
			if err != nil {
				return err
			}

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if c, ok := out.(serializer.Closer); ok {
					_ = c.Close()
				}
			}()

			ss := &snapshotter.SystemSnapshotter{
				Version:    version,
				Provider:   wmi.NewConnectionProvider(wmi.WithNamespace(cmd.String("namespace"))),
				Serializer: out,
				States:     states,
			}

			if !cmd.Bool("watch") {
				return ss.Measure(ctx)
			}

			return watch(ctx, ss, cmd.Duration("interval"))
		},
	}
}

// watch captures snapshots repeatedly, at most one per interval, until
// the context is canceled.
func watch(ctx context.Context, ss snapshotter.Snapshotter, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("watch interval must be positive, got %s", interval)
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				slog.Debug("watch stopped")
				return nil
			}
			return err
		}

		if err := ss.Measure(ctx); err != nil {
			return err
		}
	}
}
