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

// Mode describes how a Segment's payload is encoded: the 4-bit mode
// indicator written ahead of it, and the width of the character-count
// field that follows, which varies by version range.
type Mode struct {
	modeBits int8
	// numCharCountBits holds the char-count field width for version
	// ranges [1,9], [10,26], [27,40] respectively.
	numCharCountBits [3]int8
}

// Mode values for a segment. kanji is unexported and unused: no segment
// factory in this package emits Shift JIS, and code outside the package
// cannot refer to it.
var (
	Numeric      = Mode{0x1, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{0x2, [3]int8{9, 11, 13}}
	Byte         = Mode{0x4, [3]int8{8, 16, 16}}
	kanji        = Mode{0x8, [3]int8{8, 10, 12}}
	ECI          = Mode{0x7, [3]int8{0, 0, 0}}
)

// charCountBits returns how many bits wide the character-count field must
// be for a segment in this mode, for the given symbol version.
func (m Mode) charCountBits(version int) int {
	switch {
	case version <= 9:
		return int(m.numCharCountBits[0])
	case version <= 26:
		return int(m.numCharCountBits[1])
	default:
		return int(m.numCharCountBits[2])
	}
}
