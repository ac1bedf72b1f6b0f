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

// Package instrumented wraps a strwrap.Registry with resolution metrics and
// logging.
package instrumented

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"vitess.io/strwrap/go/log"
	"vitess.io/strwrap/go/strwrap"
	"vitess.io/strwrap/go/strwrap/wrappers"
)

const (
	resultOK        = "ok"
	resultNoBackend = "no_backend"
)

// Resolver resolves backends through a registry, counting the outcome of
// every call.
type Resolver struct {
	registry    *strwrap.Registry
	resolutions *prometheus.CounterVec
}

// NewResolver returns a Resolver for r and registers its collectors with reg.
// A nil reg leaves the collectors unregistered.
func NewResolver(r *strwrap.Registry, reg prometheus.Registerer) (*Resolver, error) {
	res := &Resolver{
		registry: r,
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "strwrap",
			Name:      "resolutions_total",
			Help:      "Backend resolutions by result and selected backend.",
		}, []string{"result", "backend"}),
	}
	if reg != nil {
		if err := reg.Register(res.resolutions); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Registry returns the underlying registry.
func (res *Resolver) Registry() *strwrap.Registry {
	return res.registry
}

// Resolve is strwrap.Registry.Resolve with accounting.
func (res *Resolver) Resolve(encodings ...string) (strwrap.Backend, error) {
	b, err := res.registry.Resolve(encodings...)
	if err != nil {
		if errors.Is(err, strwrap.ErrNoCapableBackend) {
			res.resolutions.WithLabelValues(resultNoBackend, "").Inc()
		}
		log.WarnS("backend resolution failed", "encodings", encodings, "error", err)
		return nil, err
	}

	name := wrappers.NameOf(b)
	res.resolutions.WithLabelValues(resultOK, name).Inc()
	log.DebugS("backend resolved", "encodings", encodings, "backend", name)
	return b, nil
}

// Wrapper resolves encodings and returns the backend as a wrappers.Wrapper.
func (res *Resolver) Wrapper(encodings ...string) (wrappers.Wrapper, error) {
	b, err := res.Resolve(encodings...)
	if err != nil {
		return nil, err
	}
	return wrappers.As(b)
}
