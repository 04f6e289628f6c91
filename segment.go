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
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Segment is a single run of payload data encoded in one Mode. A QR code's
// data area is the concatenation of one or more segments. Segment values
// are immutable after construction; the encoder trusts that NumChars
// agrees with the mode and Data the factories below produce.
type Segment struct {
	Mode     Mode
	NumChars int // Characters for text modes, bytes for Byte, 0 for ECI.
	Data     bitBuffer
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	alphanumericRegexp = regexp.MustCompile(`^[A-Z0-9 $%*+./:-]*$`)
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
)

// getTotalBits sums 4 (mode indicator) + charCountBits(mode, version) +
// len(Data) across segs. It returns -1 if any segment's NumChars does not
// fit its character-count field at this version, or if the total would
// overflow an int32, so the caller can reject this version and try the
// next one.
func getTotalBits(segs []*Segment, version int) int {
	result := int64(0)
	for _, seg := range segs {
		ccBits := seg.Mode.charCountBits(version)
		if seg.NumChars >= 1<<uint(ccBits) {
			return -1
		}

		result += int64(4 + ccBits + len(seg.Data))
		if result > math.MaxInt32 {
			return -1
		}
	}
	return int(result)
}

// MakeNumeric encodes a string of decimal digits into a numeric-mode
// segment: groups of 3 digits become 10 bits, a trailing pair becomes 7
// bits, and a trailing single digit becomes 4 bits. It panics if digits
// contains anything outside [0-9]; callers that accept untrusted text
// should route it through MakeSegments instead.
func MakeNumeric(digits string) *Segment {
	if !numericRegexp.MatchString(digits) {
		panic("MakeNumeric: string contains non-numeric characters")
	}

	bb := make(bitBuffer, 0, len(digits)*3+(len(digits)+2)/3)
	for i := 0; i < len(digits); {
		n := min(len(digits)-i, 3)
		d, _ := strconv.Atoi(digits[i : i+n]) // Safe: numericRegexp guarantees digits only.
		bb.appendBits(d, n*3+1)
		i += n
	}

	return &Segment{Mode: Numeric, NumChars: len(digits), Data: bb}
}

// MakeAlphanumeric encodes text drawn from the 45-character QR
// alphanumeric alphabet (digits, uppercase letters, space, $%*+-./:) into
// an alphanumeric-mode segment: pairs of characters become 11 bits, and a
// trailing single character becomes 6 bits. It panics if text contains a
// character outside that alphabet.
func MakeAlphanumeric(text string) *Segment {
	if !alphanumericRegexp.MatchString(text) {
		panic("MakeAlphanumeric: string contains characters outside the alphanumeric charset")
	}

	bb := make(bitBuffer, 0, len(text)*5+(len(text)+1)/2)
	var i int
	for i = 0; i <= len(text)-2; i += 2 {
		value := strings.IndexByte(alphanumericCharset, text[i]) * 45
		value += strings.IndexByte(alphanumericCharset, text[i+1])
		bb.appendBits(value, 11)
	}
	if i < len(text) {
		bb.appendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return &Segment{Mode: Alphanumeric, NumChars: len(text), Data: bb}
}

// MakeBytes encodes an arbitrary byte slice into a byte-mode segment,
// 8 bits per byte.
func MakeBytes(data []byte) *Segment {
	bb := make(bitBuffer, 0, len(data)*8)
	for _, b := range data {
		bb.appendBits(int(b), 8)
	}

	return &Segment{Mode: Byte, NumChars: len(data), Data: bb}
}

// MakeECI encodes an Extended Channel Interpretation designator in 8, 16,
// or 24 bits, by the three ranges ISO/IEC 18004 annex F defines ECI
// assignment values for. It returns an error if assignValue is negative or
// at least 1,000,000.
func MakeECI(assignValue int) (*Segment, error) {
	bb := make(bitBuffer, 0, 24)
	switch {
	case assignValue < 0:
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("ECI assignment value must be non-negative, got %d", assignValue)}
	case assignValue < 1<<7:
		bb.appendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.appendBits(2, 2)
		bb.appendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.appendBits(6, 3)
		bb.appendBits(assignValue, 21)
	default:
		return nil, &InvalidArgumentError{Msg: fmt.Sprintf("ECI assignment value out of range: %d", assignValue)}
	}

	return &Segment{Mode: ECI, NumChars: 0, Data: bb}, nil
}

// MakeSegments chooses a single encoding mode for the whole of text and
// returns a one-element segment list: numeric if every character is a
// digit, alphanumeric if every character is in the alphanumeric charset,
// otherwise byte mode over the UTF-8 encoding. It does not attempt to mix
// modes within one string. An empty string yields an empty segment list.
func MakeSegments(text string) []*Segment {
	if len(text) == 0 {
		return []*Segment{}
	}

	if numericRegexp.MatchString(text) {
		return []*Segment{MakeNumeric(text)}
	}
	if alphanumericRegexp.MatchString(text) {
		return []*Segment{MakeAlphanumeric(text)}
	}
	return []*Segment{MakeBytes([]byte(text))}
}
