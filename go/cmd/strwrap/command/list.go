/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package command

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"vitess.io/strwrap/go/strwrap"
	"vitess.io/strwrap/go/strwrap/wrappers"
)

func newBackendsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the registered backends in priority order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Priority", "Backend")
			for i, b := range e.resolver.Registry().List() {
				if err := table.Append([]string{strconv.Itoa(i + 1), wrappers.NameOf(b)}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}

func newResolveCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [ENCODING...]",
		Short: "Print the first backend supporting every given encoding.",
		Long: "Print the first backend, in priority order, that supports every given encoding.\n" +
			"With no encodings, " + strwrap.DefaultEncoding + " is resolved.",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := e.resolver.Resolve(args...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), wrappers.NameOf(b))
			return err
		},
	}
}

func newSingleByteCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "single-byte [ENCODING...]",
		Short: "List the known single-byte encodings, or classify the given ones.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range e.table.Names() {
					if _, err := fmt.Fprintln(out, name); err != nil {
						return err
					}
				}
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.Header("Encoding", "Single-byte")
			for _, name := range args {
				if err := table.Append([]string{name, strconv.FormatBool(e.table.Contains(name))}); err != nil {
					return err
				}
			}
			return table.Render()
		},
	}
}
