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
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// IANA transcodes through UTF-8 between any encodings registered in the
// IANA index of golang.org/x/text. It is the most capable wrapper and is
// registered first.
type IANA struct {
	index *ianaindex.Index
}

// NewIANA returns a wrapper backed by ianaindex.IANA.
func NewIANA() *IANA {
	return &IANA{index: ianaindex.IANA}
}

func (w *IANA) Name() string { return "ianaindex" }

// Supports reports whether the index knows name and has an
// implementation for it. Names the index recognizes but cannot transcode
// are not supported.
func (w *IANA) Supports(name string) bool {
	_, err := w.lookup(name)
	return err == nil
}

func (w *IANA) lookup(name string) (encoding.Encoding, error) {
	enc, err := w.index.Encoding(name)
	if err != nil || enc == nil {
		return nil, unsupported(name)
	}
	return enc, nil
}

func (w *IANA) toUTF8(src []byte, name string) ([]byte, error) {
	if isUTF8(name) {
		return src, nil
	}
	enc, err := w.lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return out, nil
}

func (w *IANA) fromUTF8(src []byte, name string) ([]byte, error) {
	if isUTF8(name) {
		return src, nil
	}
	enc, err := w.lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes(src)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", name, err)
	}
	return out, nil
}

func (w *IANA) Length(src []byte, name string) (int, error) {
	if !w.Supports(name) {
		return 0, unsupported(name)
	}
	utf, err := w.toUTF8(src, name)
	if err != nil {
		return 0, err
	}
	return utf8.RuneCount(utf), nil
}

func (w *IANA) Slice(src []byte, from, to int, name string) ([]byte, error) {
	if !w.Supports(name) {
		return nil, unsupported(name)
	}
	utf, err := w.toUTF8(src, name)
	if err != nil {
		return nil, err
	}
	return w.fromUTF8(sliceUTF8(utf, from, to), name)
}

func (w *IANA) Convert(src []byte, to, from string) ([]byte, error) {
	if !w.Supports(to) {
		return nil, unsupported(to)
	}
	if isUTF8(to) && isUTF8(from) {
		return append([]byte(nil), src...), nil
	}
	utf, err := w.toUTF8(src, from)
	if err != nil {
		return nil, err
	}
	return w.fromUTF8(utf, to)
}
