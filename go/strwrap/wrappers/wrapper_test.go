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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitess.io/strwrap/go/strwrap"
)

func names(backends []strwrap.Backend) []string {
	out := make([]string, 0, len(backends))
	for _, b := range backends {
		out = append(out, NameOf(b))
	}
	return out
}

func TestNewRegistryPriority(t *testing.T) {
	testCases := []struct {
		features strwrap.Features
		want     []string
	}{
		{DefaultFeatures(), []string{"ianaindex", "charmap", "native"}},
		{strwrap.Features{FeatureCharmap: true}, []string{"charmap", "native"}},
		{nil, []string{"native"}},
	}

	for _, tc := range testCases {
		r := NewRegistry(tc.features, nil)
		assert.Equal(t, tc.want, names(r.List()))
	}
}

func TestResolveWrapper(t *testing.T) {
	r := NewRegistry(DefaultFeatures(), nil)

	w, err := Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, "ianaindex", w.Name())

	r = NewRegistry(strwrap.Features{FeatureCharmap: true}, nil)
	w, err = Resolve(r, "KOI8-R", "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, "charmap", w.Name())

	w, err = Resolve(r, "7bit")
	require.NoError(t, err)
	assert.Equal(t, "native", w.Name())

	_, err = Resolve(r, "Shift_JIS")
	assert.ErrorIs(t, err, strwrap.ErrNoCapableBackend)
}

type bareBackend struct{}

func (*bareBackend) Supports(string) bool { return true }

func TestResolveNonWrapper(t *testing.T) {
	r := strwrap.NewRegistry()
	r.Register(&bareBackend{})

	_, err := Resolve(r, "UTF-8")
	assert.Error(t, err)
	assert.Equal(t, "*wrappers.bareBackend", NameOf(&bareBackend{}))
}

func TestNative(t *testing.T) {
	n := NewNative(strwrap.DefaultSingleByte.Extend("KOI8-R"))

	assert.True(t, n.Supports("utf-8"))
	assert.True(t, n.Supports("ascii"))
	assert.True(t, n.Supports("koi8-r"))
	assert.False(t, n.Supports("SHIFT_JIS"))
	assert.False(t, n.Supports("UTF-16"))

	l, err := n.Length([]byte("héllo"), "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, 5, l)

	l, err = n.Length([]byte("héllo"), "ISO-8859-1")
	require.NoError(t, err)
	assert.Equal(t, 6, l)

	_, err = n.Length([]byte("x"), "UTF-16")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	s, err := n.Slice([]byte("😊😂🤢"), 1, 3, "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, []byte("😂🤢"), s)

	s, err = n.Slice([]byte("testString"), 2, 20, "ASCII")
	require.NoError(t, err)
	assert.Equal(t, []byte("stString"), s)
}

func TestNativeConvert(t *testing.T) {
	n := NewNative(nil)

	testCases := []struct {
		in       []byte
		to, from string
		want     []byte
		failed   int
	}{
		{[]byte("héllo"), "ISO-8859-1", "UTF-8", []byte("h\xe9llo"), 0},
		{[]byte("h\xe9llo"), "UTF-8", "iso-8859-1", []byte("héllo"), 0},
		{[]byte("héllo"), "ASCII", "UTF-8", []byte("h?llo"), 1},
		{[]byte("h\xe9llo"), "ascii", "ISO-8859-1", []byte("h?llo"), 1},
		{[]byte("h\xe9llo"), "UTF-8", "ASCII", []byte("h?llo"), 1},
		{[]byte("same"), "ISO-8859-2", "iso-8859-2", []byte("same"), 0},
	}

	for _, tc := range testCases {
		got, err := n.Convert(tc.in, tc.to, tc.from)
		if tc.failed > 0 {
			assert.Equal(t, ErrFailedConversion(tc.failed), err)
		} else {
			assert.NoError(t, err)
		}
		assert.Equal(t, tc.want, got, "Convert(%q, %s, %s)", tc.in, tc.to, tc.from)
	}

	_, err := n.Convert([]byte("x"), "UTF-8", "ISO-8859-2")
	assert.ErrorIs(t, err, ErrUnsupportedConversion)

	_, err = n.Convert([]byte("x"), "SHIFT_JIS", "UTF-8")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestCharmap(t *testing.T) {
	c := NewCharmap()

	assert.True(t, c.Supports("koi8-r"))
	assert.True(t, c.Supports("Windows-1252"))
	assert.True(t, c.Supports("CP-1251"))
	assert.True(t, c.Supports("UTF-8"))
	assert.False(t, c.Supports("ASCII"))
	assert.False(t, c.Supports("SHIFT_JIS"))

	koi, err := c.Convert([]byte("Привет"), "KOI8-R", "UTF-8")
	require.NoError(t, err)
	assert.Len(t, koi, 6)

	l, err := c.Length(koi, "KOI8-R")
	require.NoError(t, err)
	assert.Equal(t, 6, l)

	back, err := c.Convert(koi, "UTF-8", "koi8-r")
	require.NoError(t, err)
	assert.Equal(t, []byte("Привет"), back)

	win, err := c.Convert(koi, "windows-1251", "KOI8-R")
	require.NoError(t, err)
	utf, err := c.Convert(win, "UTF-8", "CP-1251")
	require.NoError(t, err)
	assert.Equal(t, []byte("Привет"), utf)

	got, err := c.Convert([]byte("a日b"), "ISO-8859-1", "UTF-8")
	assert.Equal(t, ErrFailedConversion(1), err)
	assert.Equal(t, []byte("a?b"), got)

	s, err := c.Slice([]byte("Привет"), 1, 3, "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, []byte("ри"), s)

	_, err = c.Convert([]byte("x"), "UTF-8", "SHIFT_JIS")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestIANA(t *testing.T) {
	w := NewIANA()

	assert.True(t, w.Supports("UTF-8"))
	assert.True(t, w.Supports("iso-8859-1"))
	assert.True(t, w.Supports("Shift_JIS"))
	assert.True(t, w.Supports("windows-1252"))
	assert.False(t, w.Supports("no-such-encoding"))

	sjis, err := w.Convert([]byte("日本語"), "Shift_JIS", "UTF-8")
	require.NoError(t, err)
	assert.Len(t, sjis, 6)

	l, err := w.Length(sjis, "SHIFT_JIS")
	require.NoError(t, err)
	assert.Equal(t, 3, l)

	part, err := w.Slice(sjis, 1, 2, "Shift_JIS")
	require.NoError(t, err)
	utf, err := w.Convert(part, "UTF-8", "Shift_JIS")
	require.NoError(t, err)
	assert.Equal(t, []byte("本"), utf)

	latin, err := w.Convert([]byte("héllo"), "ISO-8859-1", "UTF-8")
	require.NoError(t, err)
	assert.Equal(t, []byte("h\xe9llo"), latin)

	_, err = w.Convert([]byte("日"), "ISO-8859-1", "UTF-8")
	assert.Error(t, err)

	_, err = w.Length([]byte("x"), "no-such-encoding")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}
