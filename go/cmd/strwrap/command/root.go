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

// Package command contains the commands of the strwrap binary.
package command

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"vitess.io/strwrap/go/config"
	"vitess.io/strwrap/go/log"
	"vitess.io/strwrap/go/strwrap"
	"vitess.io/strwrap/go/strwrap/instrumented"
	"vitess.io/strwrap/go/strwrap/wrappers"
)

// env is the composition root shared by all subcommands. It is populated by
// the root command's PersistentPreRunE.
type env struct {
	cfg      *config.Config
	table    *strwrap.Table
	metrics  *prometheus.Registry
	resolver *instrumented.Resolver
}

func (e *env) load(cmd *cobra.Command) error {
	if err := log.Init(cmd.Flags()); err != nil {
		return err
	}

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	return e.setup(cfg)
}

func (e *env) setup(cfg *config.Config) error {
	e.cfg = cfg
	e.table = cfg.SingleByteTable()
	e.metrics = prometheus.NewRegistry()

	registry := wrappers.NewRegistry(cfg.Features(wrappers.DefaultFeatures()), e.table)
	resolver, err := instrumented.NewResolver(registry, e.metrics)
	if err != nil {
		return err
	}
	e.resolver = resolver

	log.InfoS("string wrappers initialized", "backends", registry.Len(), "config", cfg.File)
	return nil
}

// New returns the strwrap root command with all subcommands attached.
func New() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:   "strwrap",
		Short: "strwrap selects character-encoding aware string backends.",
		Long: "`strwrap` reports which string wrapper backend handles a set of encodings,\n" +
			"classifies single-byte encodings and validates UTF-8 input.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Flush()
		},
	}

	log.RegisterFlags(root.PersistentFlags())
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newBackendsCmd(e),
		newResolveCmd(e),
		newSingleByteCmd(e),
		newValidateCmd(e),
		newLengthCmd(e),
		newConvertCmd(e),
		newServeCmd(e),
	)
	return root
}
