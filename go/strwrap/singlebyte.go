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
	"slices"
	"strings"
)

// Table is an immutable set of upper-case single-byte encoding names. It
// keeps the order names were given in for display.
type Table struct {
	names []string
	set   map[string]struct{}
}

// NewTable returns a table holding names, upper-cased and de-duplicated.
func NewTable(names ...string) *Table {
	t := &Table{set: make(map[string]struct{}, len(names))}
	t.add(names)
	return t
}

func (t *Table) add(names []string) {
	for _, name := range names {
		name = strings.ToUpper(name)
		if name == "" {
			continue
		}
		if _, ok := t.set[name]; ok {
			continue
		}
		t.set[name] = struct{}{}
		t.names = append(t.names, name)
	}
}

// Extend returns a new table holding the names of t followed by names.
// t itself is left unchanged.
func (t *Table) Extend(names ...string) *Table {
	ext := NewTable(t.names...)
	ext.add(names)
	return ext
}

// Contains reports whether name, case-folded, is in the table. Unknown
// names are simply not single-byte.
func (t *Table) Contains(name string) bool {
	_, ok := t.set[strings.ToUpper(name)]
	return ok
}

// Names returns a copy of the table in display order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of names in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// DefaultSingleByte lists the single-byte encodings known out of the box.
// It is intentionally incomplete; use Extend to recognize more.
var DefaultSingleByte = NewTable(
	"ASCII", "7BIT", "8BIT",
	"ISO-8859-1", "ISO-8859-2", "ISO-8859-3", "ISO-8859-4", "ISO-8859-5",
	"ISO-8859-6", "ISO-8859-7", "ISO-8859-8", "ISO-8859-9", "ISO-8859-10",
	"ISO-8859-11", "ISO-8859-13", "ISO-8859-14", "ISO-8859-15", "ISO-8859-16",
	"CP-1251", "CP-1252",
)

// SingleByteEncodings returns the names in DefaultSingleByte.
func SingleByteEncodings() []string {
	return DefaultSingleByte.Names()
}

// IsSingleByteEncoding reports whether encoding is in DefaultSingleByte.
func IsSingleByteEncoding(encoding string) bool {
	return DefaultSingleByte.Contains(encoding)
}
