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

// bitBuffer is an append-only sequence of 0/1 values, one per byte slot,
// used as the accumulator for segment payloads and the final codeword
// bitstream before they are packed to bytes.
type bitBuffer []byte

// appendBits appends the low length bits of value, most significant bit
// first. It panics if length is out of [0,31] or value has bits set above
// position length-1; both indicate a caller bug, not bad user input, since
// every caller of appendBits computes length itself.
func (bb *bitBuffer) appendBits(value int, length int) {
	if length < 0 || length > 31 || value>>uint(length) != 0 {
		panic("appendBits: value out of range for length")
	}

	for i := length - 1; i >= 0; i-- {
		*bb = append(*bb, byte(value>>uint(i)&1))
	}
}

// packBytes packs the buffer into ceil(len/8) bytes, most significant bit
// first within each byte, with any trailing bits padded with 0.
func (bb bitBuffer) packBytes() []byte {
	result := make([]byte, (len(bb)+7)/8)
	for i, bit := range bb {
		result[i>>3] |= bit << uint(7-i&7)
	}
	return result
}
