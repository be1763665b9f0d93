/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	apperrors "github.com/NidhiHemanth/windows-snapshot/pkg/errors"
	"github.com/NidhiHemanth/windows-snapshot/pkg/serializer"
	"github.com/NidhiHemanth/windows-snapshot/pkg/snapshotter"
	"github.com/NidhiHemanth/windows-snapshot/pkg/wmi"
)

var outputFlag = &cli.StringFlag{
	Name:    "output",
	Aliases: []string{"o"},
	Usage:   "output target: file path, oci://registry/repo:tag, or empty for stdout",
}

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Usage:   fmt.Sprintf("output format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	Value:   string(serializer.FormatJSON),
}

var namespaceFlag = &cli.StringFlag{
	Name:    "namespace",
	Aliases: []string{"n"},
	Usage:   "WMI namespace to connect to",
	Sources: cli.EnvVars("WINSNAP_NAMESPACE"),
	Value:   wmi.DefaultNamespace,
}

// parseOutputFormat reads and validates the format flag.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	format := serializer.Format(cmd.String("format"))
	if format.IsUnknown() {
		return "", apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unknown output format: %q", format))
	}
	return format, nil
}

// filterStates keeps only the states whose names appear in sections.
// An empty filter keeps everything. Unknown section names are an error.
func filterStates(states []snapshotter.State, sections []string) ([]snapshotter.State, error) {
	if len(sections) == 0 {
		return states, nil
	}

	byName := make(map[string]snapshotter.State, len(states))
	for _, st := range states {
		byName[st.Name()] = st
	}

	out := make([]snapshotter.State, 0, len(sections))
	for _, name := range sections {
		st, ok := byName[strings.TrimSpace(name)]
		if !ok {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeNotFound,
				fmt.Sprintf("unknown section %q (known sections: %s)",
					name, strings.Join(stateNames(states), ", ")),
				map[string]any{"section": name})
		}
		out = append(out, st)
	}
	return out, nil
}

func stateNames(states []snapshotter.State) []string {
	names := make([]string, 0, len(states))
	for _, st := range states {
		names = append(names, st.Name())
	}
	return names
}
