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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCapableBackend is matched by every *NoCapableBackendError.
	ErrNoCapableBackend = errors.New("no capable backend")

	// ErrTypeMismatch is returned by ValidUTF8 for input that is neither a
	// string nor a byte slice.
	ErrTypeMismatch = errors.New("type mismatch")
)

// NoCapableBackendError is returned by Resolve when no registered backend
// supports all of Encodings.
type NoCapableBackendError struct {
	Encodings []string
}

func (e *NoCapableBackendError) Error() string {
	return fmt.Sprintf("no wrapper found supporting encoding(s) %s", strings.Join(e.Encodings, ", "))
}

func (e *NoCapableBackendError) Is(target error) bool {
	return target == ErrNoCapableBackend
}
