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

	"golang.org/x/text/encoding/charmap"
)

var codePages = map[string]*charmap.Charmap{
	"ISO-8859-1":  charmap.ISO8859_1,
	"ISO-8859-2":  charmap.ISO8859_2,
	"ISO-8859-3":  charmap.ISO8859_3,
	"ISO-8859-4":  charmap.ISO8859_4,
	"ISO-8859-5":  charmap.ISO8859_5,
	"ISO-8859-6":  charmap.ISO8859_6,
	"ISO-8859-7":  charmap.ISO8859_7,
	"ISO-8859-8":  charmap.ISO8859_8,
	"ISO-8859-9":  charmap.ISO8859_9,
	"ISO-8859-10": charmap.ISO8859_10,
	"ISO-8859-13": charmap.ISO8859_13,
	"ISO-8859-14": charmap.ISO8859_14,
	"ISO-8859-15": charmap.ISO8859_15,
	"ISO-8859-16": charmap.ISO8859_16,

	"WINDOWS-874":  charmap.Windows874,
	"WINDOWS-1250": charmap.Windows1250,
	"WINDOWS-1251": charmap.Windows1251,
	"WINDOWS-1252": charmap.Windows1252,
	"WINDOWS-1253": charmap.Windows1253,
	"WINDOWS-1254": charmap.Windows1254,
	"WINDOWS-1255": charmap.Windows1255,
	"WINDOWS-1256": charmap.Windows1256,
	"WINDOWS-1257": charmap.Windows1257,
	"WINDOWS-1258": charmap.Windows1258,
	"CP-1250":      charmap.Windows1250,
	"CP-1251":      charmap.Windows1251,
	"CP-1252":      charmap.Windows1252,

	"KOI8-R":    charmap.KOI8R,
	"KOI8-U":    charmap.KOI8U,
	"IBM437":    charmap.CodePage437,
	"IBM850":    charmap.CodePage850,
	"IBM866":    charmap.CodePage866,
	"MACINTOSH": charmap.Macintosh,
}

// Charmap transcodes between UTF-8 and the single-byte code pages of
// golang.org/x/text/encoding/charmap.
type Charmap struct{}

// NewCharmap returns a code page wrapper.
func NewCharmap() *Charmap {
	return &Charmap{}
}

func (c *Charmap) Name() string { return "charmap" }

func (c *Charmap) Supports(encoding string) bool {
	return isUTF8(encoding) || lookupCodePage(encoding) != nil
}

func lookupCodePage(encoding string) *charmap.Charmap {
	return codePages[strings.ToUpper(encoding)]
}

func (c *Charmap) Length(src []byte, encoding string) (int, error) {
	switch {
	case isUTF8(encoding):
		return utf8.RuneCount(src), nil
	case lookupCodePage(encoding) != nil:
		return len(src), nil
	default:
		return 0, unsupported(encoding)
	}
}

func (c *Charmap) Slice(src []byte, from, to int, encoding string) ([]byte, error) {
	switch {
	case isUTF8(encoding):
		return sliceUTF8(src, from, to), nil
	case lookupCodePage(encoding) != nil:
		from, to = clamp(from, to, len(src))
		return src[from:to], nil
	default:
		return nil, unsupported(encoding)
	}
}

func (c *Charmap) Convert(src []byte, to, from string) ([]byte, error) {
	if !c.Supports(to) {
		return nil, unsupported(to)
	}
	if !c.Supports(from) {
		return nil, unsupported(from)
	}
	if strings.EqualFold(to, from) {
		return append([]byte(nil), src...), nil
	}

	var failed int
	out := make([]byte, 0, len(src)*2)
	dst := lookupCodePage(to)
	emit := func(r rune) {
		if dst == nil {
			out = utf8.AppendRune(out, r)
			return
		}
		b, ok := dst.EncodeRune(r)
		if !ok {
			failed++
			b = '?'
		}
		out = append(out, b)
	}

	if cm := lookupCodePage(from); cm != nil {
		for _, b := range src {
			emit(cm.DecodeByte(b))
		}
	} else {
		for len(src) > 0 {
			r, w := utf8.DecodeRune(src)
			src = src[w:]
			if r == utf8.RuneError && w == 1 {
				failed++
				r = '?'
			}
			emit(r)
		}
	}

	if failed > 0 {
		return out, ErrFailedConversion(failed)
	}
	return out, nil
}
