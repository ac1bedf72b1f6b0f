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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"vitess.io/strwrap/go/strwrap"
)

// errInvalidUTF8 makes validate exit non-zero without printing usage.
var errInvalidUTF8 = errors.New("input is not valid UTF-8")

// readInput reads the file named by args[0], or stdin when args is empty or
// args[0] is "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func newValidateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check that a file, or stdin, is valid UTF-8.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if !strwrap.IsValidUTF8(data) {
				return errInvalidUTF8
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
}

func newLengthCmd(e *env) *cobra.Command {
	var encoding string
	cmd := &cobra.Command{
		Use:   "length [FILE]",
		Short: "Count the characters of a file, or stdin, in the given encoding.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			w, err := e.resolver.Wrapper(encoding)
			if err != nil {
				return err
			}
			n, err := w.Length(data, encoding)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
			return err
		},
	}
	cmd.Flags().StringVar(&encoding, "encoding", strwrap.DefaultEncoding, "encoding of the input")
	return cmd
}

func newConvertCmd(e *env) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert --to ENCODING [FILE]",
		Short: "Convert a file, or stdin, between encodings and write it to stdout.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			w, err := e.resolver.Wrapper(to, from)
			if err != nil {
				return err
			}
			out, err := w.Convert(data, to, from)
			if err != nil && out == nil {
				return err
			}
			if _, werr := cmd.OutOrStdout().Write(out); werr != nil {
				return werr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&from, "from", strwrap.DefaultEncoding, "encoding of the input")
	cmd.Flags().StringVar(&to, "to", "", "encoding of the output")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
