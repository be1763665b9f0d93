/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	apperrors "github.com/NidhiHemanth/windows-snapshot/pkg/errors"
	"github.com/NidhiHemanth/windows-snapshot/pkg/serializer"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Read a previously captured snapshot and re-emit it",
		ArgsUsage: "FILE",
		Description: `Read a snapshot file written by the snapshot command (JSON or YAML,
inferred from the file extension) and re-emit it in the requested
format. Useful for converting a stored snapshot between formats or
rendering it as a table.

# Examples

Render a stored snapshot as a table:
  winsnap inspect state.json -f table

Convert JSON to YAML:
  winsnap inspect state.json -f yaml -o state.yaml`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return apperrors.New(apperrors.ErrCodeInvalidRequest, "inspect expects exactly one snapshot file argument")
			}

			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			r, err := serializer.NewFileReader(cmd.Args().First())
			if err != nil {
				return err
			}
			defer func() { _ = r.Close() }()

			var snapshot map[string]any
			if err := r.Deserialize(&snapshot); err != nil {
				return err
			}

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if c, ok := out.(serializer.Closer); ok {
					_ = c.Close()
				}
			}()

			return out.Serialize(ctx, snapshot)
		},
	}
}
