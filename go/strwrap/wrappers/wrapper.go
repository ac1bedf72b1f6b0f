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

// Package wrappers provides the string wrapper backends registered by
// default: an IANA-indexed transcoder, a single-byte code page transcoder and
// a native fallback that only understands UTF-8 and single-byte encodings.
package wrappers

import (
	"errors"
	"fmt"

	"vitess.io/strwrap/go/strwrap"
)

// Feature names reported by the environment for the optional wrappers.
const (
	FeatureIANA    = "ianaindex"
	FeatureCharmap = "charmap"
)

var (
	ErrUnsupportedEncoding   = errors.New("unsupported encoding")
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// ErrFailedConversion counts the characters that could not be represented in
// the target encoding. Convert still returns its output, with each of those
// characters replaced by '?'.
type ErrFailedConversion int

func (e ErrFailedConversion) Error() string {
	return fmt.Sprintf("failed to convert %d codepoints", int(e))
}

// Wrapper is a backend that can also operate on encoded strings. Offsets and
// lengths are counted in characters of the given encoding.
type Wrapper interface {
	strwrap.Backend

	Name() string
	Length(src []byte, encoding string) (int, error)
	// Slice returns the characters in [from, to). Out of range bounds are
	// clamped and a negative to means the end of src.
	Slice(src []byte, from, to int, encoding string) ([]byte, error)
	Convert(src []byte, to, from string) ([]byte, error)
}

// Providers returns the default wrappers in priority order. The native
// wrapper recognizes the single-byte names in table.
func Providers(table *strwrap.Table) []strwrap.Provider {
	return []strwrap.Provider{
		{Feature: FeatureIANA, New: func() strwrap.Backend { return NewIANA() }},
		{Feature: FeatureCharmap, New: func() strwrap.Backend { return NewCharmap() }},
		{New: func() strwrap.Backend { return NewNative(table) }},
	}
}

// DefaultFeatures reports every optional wrapper as available.
func DefaultFeatures() strwrap.Features {
	return strwrap.Features{FeatureIANA: true, FeatureCharmap: true}
}

// NewRegistry returns a registry holding the default wrappers allowed by
// features.
func NewRegistry(features strwrap.Features, table *strwrap.Table) *strwrap.Registry {
	return strwrap.Initialize(features, Providers(table)...)
}

// Resolve resolves encodings on r and returns the result as a Wrapper.
func Resolve(r *strwrap.Registry, encodings ...string) (Wrapper, error) {
	b, err := r.Resolve(encodings...)
	if err != nil {
		return nil, err
	}
	return As(b)
}

// As returns b as a Wrapper, or an error if b only implements the capability
// check.
func As(b strwrap.Backend) (Wrapper, error) {
	w, ok := b.(Wrapper)
	if !ok {
		return nil, fmt.Errorf("backend %s does not implement Wrapper", NameOf(b))
	}
	return w, nil
}

// NameOf returns the wrapper name of b, or its Go type.
func NameOf(b strwrap.Backend) string {
	if w, ok := b.(interface{ Name() string }); ok {
		return w.Name()
	}
	return fmt.Sprintf("%T", b)
}

func unsupported(encoding string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedEncoding, encoding)
}

// clamp bounds [from, to) to n characters.
func clamp(from, to, n int) (int, int) {
	if to < 0 || to > n {
		to = n
	}
	if from < 0 {
		from = 0
	}
	if from > to {
		from = to
	}
	return from, to
}
