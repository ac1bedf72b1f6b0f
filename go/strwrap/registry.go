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

package strwrap

import (
	"reflect"
	"slices"
	"sync"
)

// Features reports which optional backend-providing features are available
// in the running environment.
type Features map[string]bool

// Has reports whether the feature is available. The empty name always is.
func (f Features) Has(name string) bool {
	return name == "" || f[name]
}

// Provider builds one backend when its Feature is available. Providers with
// an empty Feature are baseline providers and are always built.
type Provider struct {
	Feature string
	New     func() Backend
}

// Registry is an ordered set of backends. Order is priority: Resolve
// returns the first full match. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	backends []Backend
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Initialize returns a registry populated from providers, in the order
// given, skipping providers whose feature is not available.
func Initialize(features Features, providers ...Provider) *Registry {
	r := NewRegistry()
	for _, p := range providers {
		if p.New == nil || !features.Has(p.Feature) {
			continue
		}
		r.Register(p.New())
	}
	return r
}

// List returns a snapshot of the registered backends in priority order.
func (r *Registry) List() []Backend {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.backends)
}

// Len returns the number of registered backends.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.backends)
}

// Register appends b with the lowest priority. Registering a nil backend,
// or an instance that is already present, is a no-op.
//
// Instances are identified by dynamic type and address, so only backends
// of pointer, func, map or chan kind are deduplicated. A func backend is
// identified by its code pointer: closures built from the same literal
// count as one instance. Any other kind, such as a struct value, has no
// identity and every call registers a new instance.
func (r *Registry) Register(b Backend) {
	if b == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(b) >= 0 {
		return
	}
	r.backends = append(r.backends, b)
}

// Unregister removes b. It is a no-op if b is not registered, and always
// for backends without an identity (see Register).
func (r *Registry) Unregister(b Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.indexOf(b); i >= 0 {
		r.backends = slices.Delete(r.backends, i, i+1)
	}
}

func (r *Registry) indexOf(b Backend) int {
	id, ok := identityOf(b)
	if !ok {
		return -1
	}
	return slices.IndexFunc(r.backends, func(other Backend) bool {
		oid, ok := identityOf(other)
		return ok && oid == id
	})
}

type identity struct {
	typ reflect.Type
	ptr uintptr
}

// identityOf never compares the backend values themselves, which would
// panic for uncomparable dynamic types.
func identityOf(b Backend) (identity, bool) {
	if b == nil {
		return identity{}, false
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return identity{typ: v.Type(), ptr: v.Pointer()}, true
	}
	return identity{}, false
}

// Resolve returns the first backend supporting every encoding. With no
// encodings it resolves DefaultEncoding. If nothing matches, the error is a
// *NoCapableBackendError carrying the requested encodings.
func (r *Registry) Resolve(encodings ...string) (Backend, error) {
	if len(encodings) == 0 {
		encodings = []string{DefaultEncoding}
	}

	for _, b := range r.List() {
		if supportsAll(b, encodings) {
			return b, nil
		}
	}
	return nil, &NoCapableBackendError{Encodings: slices.Clone(encodings)}
}

func supportsAll(b Backend, encodings []string) bool {
	for _, enc := range encodings {
		if !b.Supports(enc) {
			return false
		}
	}
	return true
}
