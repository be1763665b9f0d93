/*
Copyright © 2025 windows-snapshot authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NidhiHemanth/windows-snapshot/pkg/header"
	"github.com/NidhiHemanth/windows-snapshot/pkg/serializer"
	"github.com/NidhiHemanth/windows-snapshot/pkg/snapshotter"
)

// classList is the resource emitted by the classes command.
type classList struct {
	header.Header `json:",inline" yaml:",inline"`

	Sections []sectionClasses `json:"sections" yaml:"sections"`
}

// sectionClasses maps one snapshot section to the WMI classes it queries.
type sectionClasses struct {
	Name    string   `json:"name" yaml:"name"`
	Title   string   `json:"title" yaml:"title"`
	Classes []string `json:"classes" yaml:"classes"`
}

func classesCmd() *cli.Command {
	return &cli.Command{
		Name:  "classes",
		Usage: "List snapshot sections and the WMI classes they query",
		Description: `List every snapshot section and the WMI classes each one queries.
Section names are valid values for the snapshot command's --section flag.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			out := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if c, ok := out.(serializer.Closer); ok {
					_ = c.Close()
				}
			}()

			return out.Serialize(ctx, buildClassList(version))
		},
	}
}

// buildClassList assembles the class list resource for every default
// snapshot section.
func buildClassList(version string) *classList {
	titler := cases.Title(language.English)

	list := &classList{}
	list.Init(header.KindClassList, snapshotter.FullAPIVersion, version)

	for _, state := range snapshotter.DefaultStates() {
		sc := sectionClasses{
			Name:  state.Name(),
			Title: titler.String(strings.ReplaceAll(state.Name(), "_", " ")),
		}
		for _, r := range state.Refreshers() {
			sc.Classes = append(sc.Classes, r.Class())
		}
		list.Sections = append(list.Sections, sc)
	}

	return list
}
