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
	"fmt"
	"unicode/utf8"
)

// IsValidUTF8 reports whether p consists entirely of well-formed UTF-8
// sequences. Truncated and overlong sequences, surrogate halves and stray
// continuation bytes are rejected. An empty input is valid.
func IsValidUTF8(p []byte) bool {
	return utf8.Valid(p)
}

// ValidUTF8 is IsValidUTF8 for callers holding untyped input. Only strings
// and byte slices are accepted; any other type yields ErrTypeMismatch.
func ValidUTF8(v any) (bool, error) {
	switch v := v.(type) {
	case string:
		return utf8.ValidString(v), nil
	case []byte:
		return utf8.Valid(v), nil
	default:
		return false, fmt.Errorf("%w: cannot validate %T as UTF-8", ErrTypeMismatch, v)
	}
}
