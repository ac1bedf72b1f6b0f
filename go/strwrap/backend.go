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

// Package strwrap selects a string wrapper backend able to operate on a
// given set of character encodings.
//
// Backends are kept in a Registry in priority order. Resolve returns the
// first backend that supports every requested encoding. The package also
// classifies single-byte encodings and validates UTF-8 input; it never
// transcodes anything itself.
package strwrap

// Backend is the capability contract consumed by the Registry.
// Supports must be a pure, non-blocking query.
type Backend interface {
	Supports(encoding string) bool
}

// DefaultEncoding is used by Resolve when no encoding is requested.
const DefaultEncoding = "UTF-8"
