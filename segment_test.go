/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package qrcodegen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAlphanumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{true, "A"},
		{false, "a"},
		{true, " "},
		{true, "."},
		{true, "*"},
		{false, ","},
		{false, "|"},
		{false, "@"},
		{true, "XYZ"},
		{false, "XYZ!"},
		{true, "79068"},
		{true, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, alphanumericRegexp.MatchString(tc.text))
		})
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		answer bool
		text   string
	}{
		{true, ""},
		{true, "0"},
		{false, "A"},
		{false, "a"},
		{false, " "},
		{true, "79068"},
		{false, "+123 ABC$"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc), func(t *testing.T) {
			assert.Equal(t, tc.answer, numericRegexp.MatchString(tc.text))
		})
	}
}

func TestMakeBytes(t *testing.T) {
	seg := MakeBytes([]byte{})
	assert.Equal(t, Byte, seg.Mode)
	assert.Equal(t, 0, seg.NumChars)
	assert.Empty(t, seg.Data)

	seg = MakeBytes([]byte{0x00})
	assert.Equal(t, 1, seg.NumChars)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, []byte(seg.Data))

	seg = MakeBytes([]byte{0xEF, 0xBB, 0xBF})
	assert.Equal(t, 3, seg.NumChars)
	assert.Len(t, seg.Data, 24)
}

func TestMakeNumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     []byte
	}{
		{"", 0, 0, []byte{}},
		{"9", 1, 4, []byte{1, 0, 0, 1}},
		{"81", 2, 7, []byte{1, 0, 1, 0, 0, 0, 1}},
		{"673", 3, 10, []byte{1, 0, 1, 0, 1, 0, 0, 0, 0, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			seg := MakeNumeric(tc.text)
			assert.Equal(t, Numeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
			assert.Equal(t, tc.bytes, []byte(seg.Data))
		})
	}
}

func TestMakeNumericPanicsOnNonDigits(t *testing.T) {
	assert.Panics(t, func() { MakeNumeric("12a") })
}

func TestMakeAlphanumeric(t *testing.T) {
	cases := []struct {
		text      string
		length    int
		bitLength int
		bytes     []byte
	}{
		{"", 0, 0, []byte{}},
		{"A", 1, 6, []byte{0, 0, 1, 0, 1, 0}},
		{"%:", 2, 11, []byte{1, 1, 0, 1, 1, 0, 1, 1, 0, 1, 0}},
		{"Q R", 3, 17, []byte{1, 0, 0, 1, 0, 1, 1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			seg := MakeAlphanumeric(tc.text)
			assert.Equal(t, Alphanumeric, seg.Mode)
			assert.Equal(t, tc.length, seg.NumChars)
			assert.Equal(t, tc.bytes, []byte(seg.Data))
		})
	}
}

func TestMakeAlphanumericPanicsOnLowercase(t *testing.T) {
	assert.Panics(t, func() { MakeAlphanumeric("abc") })
}

func TestMakeECI(t *testing.T) {
	cases := []struct {
		input     int
		bitLength int
	}{
		{127, 8},
		{10345, 16},
		{999999, 24},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%d", tc.input), func(t *testing.T) {
			seg, err := MakeECI(tc.input)
			require.NoError(t, err)
			assert.Equal(t, ECI, seg.Mode)
			assert.Equal(t, 0, seg.NumChars)
			assert.Equal(t, tc.bitLength, len(seg.Data))
		})
	}
}

func TestMakeECIRejectsOutOfRange(t *testing.T) {
	_, err := MakeECI(-1)
	require.Error(t, err)

	_, err = MakeECI(1_000_000)
	require.Error(t, err)
}

func TestMakeSegments(t *testing.T) {
	assert.Empty(t, MakeSegments(""))

	segs := MakeSegments("314159")
	require.Len(t, segs, 1)
	assert.Equal(t, Numeric, segs[0].Mode)

	segs = MakeSegments("HELLO WORLD")
	require.Len(t, segs, 1)
	assert.Equal(t, Alphanumeric, segs[0].Mode)

	segs = MakeSegments("Hello, world!")
	require.Len(t, segs, 1)
	assert.Equal(t, Byte, segs[0].Mode)
}

func TestGetTotalBits(t *testing.T) {
	assert.Equal(t, 0, getTotalBits([]*Segment{}, 1))
	assert.Equal(t, 0, getTotalBits([]*Segment{}, 40))

	segs := []*Segment{{Mode: Byte, NumChars: 3, Data: make(bitBuffer, 24)}}
	assert.Equal(t, 36, getTotalBits(segs, 2))
	assert.Equal(t, 44, getTotalBits(segs, 10))
	assert.Equal(t, 44, getTotalBits(segs, 30))

	overflowing := []*Segment{{Mode: Byte, NumChars: 4093, Data: make(bitBuffer, 32744)}}
	assert.Equal(t, -1, getTotalBits(overflowing, 1))
	assert.Equal(t, 32764, getTotalBits(overflowing, 10))
}
