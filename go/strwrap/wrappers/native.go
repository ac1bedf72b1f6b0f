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

package wrappers

import (
	"strings"
	"unicode/utf8"

	"vitess.io/strwrap/go/strwrap"
)

// maxRune is the highest code point each natively convertible encoding can
// hold. Bytes of these encodings map one to one onto code points.
var maxRune = map[string]rune{
	"ASCII":      0x7F,
	"7BIT":       0x7F,
	"8BIT":       0xFF,
	"ISO-8859-1": 0xFF,
}

// Native is the baseline wrapper. It needs no external tables and supports
// UTF-8 plus every single-byte encoding in its table, though it can only
// convert between UTF-8 and the Latin-1 family.
type Native struct {
	table *strwrap.Table
}

// NewNative returns a native wrapper for table, or strwrap.DefaultSingleByte
// when table is nil.
func NewNative(table *strwrap.Table) *Native {
	if table == nil {
		table = strwrap.DefaultSingleByte
	}
	return &Native{table: table}
}

func (n *Native) Name() string { return "native" }

func (n *Native) Supports(encoding string) bool {
	return isUTF8(encoding) || n.table.Contains(encoding)
}

func (n *Native) Length(src []byte, encoding string) (int, error) {
	switch {
	case isUTF8(encoding):
		return utf8.RuneCount(src), nil
	case n.table.Contains(encoding):
		return len(src), nil
	default:
		return 0, unsupported(encoding)
	}
}

func (n *Native) Slice(src []byte, from, to int, encoding string) ([]byte, error) {
	switch {
	case isUTF8(encoding):
		return sliceUTF8(src, from, to), nil
	case n.table.Contains(encoding):
		from, to = clamp(from, to, len(src))
		return src[from:to], nil
	default:
		return nil, unsupported(encoding)
	}
}

func (n *Native) Convert(src []byte, to, from string) ([]byte, error) {
	if !n.Supports(to) {
		return nil, unsupported(to)
	}
	if !n.Supports(from) {
		return nil, unsupported(from)
	}
	if strings.EqualFold(to, from) {
		return append([]byte(nil), src...), nil
	}

	toMax, toLatin := maxRune[strings.ToUpper(to)]
	fromMax, fromLatin := maxRune[strings.ToUpper(from)]
	switch {
	case isUTF8(from) && toLatin:
		return encodeLatin(src, toMax)
	case fromLatin && isUTF8(to):
		return decodeLatin(src, fromMax)
	case fromLatin && toLatin:
		utf, err := decodeLatin(src, fromMax)
		out, err2 := encodeLatin(utf, toMax)
		if err2 != nil {
			return out, err2
		}
		return out, err
	default:
		return nil, ErrUnsupportedConversion
	}
}

func isUTF8(encoding string) bool {
	return strings.EqualFold(encoding, strwrap.DefaultEncoding)
}

func encodeLatin(src []byte, limit rune) ([]byte, error) {
	var failed int
	out := make([]byte, 0, len(src))
	for len(src) > 0 {
		r, w := utf8.DecodeRune(src)
		src = src[w:]
		if (r == utf8.RuneError && w == 1) || r > limit {
			failed++
			r = '?'
		}
		out = append(out, byte(r))
	}
	if failed > 0 {
		return out, ErrFailedConversion(failed)
	}
	return out, nil
}

func decodeLatin(src []byte, limit rune) ([]byte, error) {
	var failed int
	out := make([]byte, 0, len(src)*2)
	for _, b := range src {
		r := rune(b)
		if r > limit {
			failed++
			r = '?'
		}
		out = utf8.AppendRune(out, r)
	}
	if failed > 0 {
		return out, ErrFailedConversion(failed)
	}
	return out, nil
}

// sliceUTF8 returns the runes of src in [from, to). Invalid bytes count as
// one character each.
func sliceUTF8(src []byte, from, to int) []byte {
	from, to = clamp(from, to, utf8.RuneCount(src))
	var start, idx int
	for i := 0; i < len(src); idx++ {
		if idx == from {
			start = i
		}
		if idx == to {
			return src[start:i]
		}
		_, w := utf8.DecodeRune(src[i:])
		i += w
	}
	if from == idx {
		start = len(src)
	}
	return src[start:]
}
