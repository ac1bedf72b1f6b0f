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
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"vitess.io/strwrap/go/log"
	"vitess.io/strwrap/go/strwrap"
	"vitess.io/strwrap/go/strwrap/wrappers"
)

type resolveResponse struct {
	Encodings []string `json:"encodings"`
	Backend   string   `json:"backend,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// resolveHandler serves /resolve?encoding=A&encoding=B. Comma separated
// values are split.
func resolveHandler(e *env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var encodings []string
		for _, v := range r.URL.Query()["encoding"] {
			for _, enc := range strings.Split(v, ",") {
				if enc = strings.TrimSpace(enc); enc != "" {
					encodings = append(encodings, enc)
				}
			}
		}

		resp := resolveResponse{Encodings: encodings}
		status := http.StatusOK
		b, err := e.resolver.Resolve(encodings...)
		switch {
		case errors.Is(err, strwrap.ErrNoCapableBackend):
			status = http.StatusNotFound
			resp.Error = err.Error()
		case err != nil:
			status = http.StatusInternalServerError
			resp.Error = err.Error()
		default:
			resp.Backend = wrappers.NameOf(b)
		}
		if len(resp.Encodings) == 0 {
			resp.Encodings = []string{strwrap.DefaultEncoding}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newMux(e *env) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.metrics, promhttp.HandlerOpts{}))
	mux.Handle("/resolve", resolveHandler(e))
	return mux
}

func newServeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve backend resolution and metrics over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			srv := &http.Server{Addr: e.cfg.ListenAddr, Handler: newMux(e)}
			go func() {
				<-ctx.Done()
				_ = srv.Close()
			}()

			log.InfoS("serving", "addr", e.cfg.ListenAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
}
