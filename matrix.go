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

// builder accumulates a QR symbol's module grid during construction. It is
// discarded once the Symbol it produces is returned; isFunction never
// outlives EncodeSegments.
type builder struct {
	version    int
	size       int
	ecl        Ecc
	modules    [][]bool
	isFunction [][]bool
}

func newBuilder(version int, ecl Ecc) *builder {
	size := version*4 + 17
	b := &builder{
		version:    version,
		size:       size,
		ecl:        ecl,
		modules:    make([][]bool, size),
		isFunction: make([][]bool, size),
	}
	for i := range b.modules {
		b.modules[i] = make([]bool, size)
		b.isFunction[i] = make([]bool, size)
	}
	return b
}

func (b *builder) setFunctionModule(x, y int, isBlack bool) {
	b.modules[y][x] = isBlack
	b.isFunction[y][x] = true
}

// drawFunctionPatterns draws every module that carries symbol metadata
// rather than payload data: timing, finder, alignment, a placeholder
// format pattern, and version information.
func (b *builder) drawFunctionPatterns() {
	for i := 0; i < b.size; i++ {
		b.setFunctionModule(6, i, i%2 == 0)
		b.setFunctionModule(i, 6, i%2 == 0)
	}

	b.drawFinderPattern(3, 3)
	b.drawFinderPattern(b.size-4, 3)
	b.drawFinderPattern(3, b.size-4)

	alignPatPos := alignmentPatternPositions[b.version]
	numAlign := len(alignPatPos)
	for i := 0; i < numAlign; i++ {
		for j := 0; j < numAlign; j++ {
			if i == 0 && j == 0 || i == 0 && j == numAlign-1 || i == numAlign-1 && j == 0 {
				continue // Overlaps a finder pattern corner.
			}
			b.drawAlignmentPattern(alignPatPos[i], alignPatPos[j])
		}
	}

	b.drawFormatBits(0) // Placeholder; rewritten once the mask is chosen.
	b.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern, including its one-module
// separator, centered at (x, y). Cells that fall outside the grid (for
// centers near the symbol edge) are silently skipped.
func (b *builder) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := max(abs(dx), abs(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < b.size && 0 <= yy && yy < b.size {
				b.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centered at (x, y).
func (b *builder) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			b.setFunctionModule(x+dx, y+dy, max(abs(dx), abs(dy)) != 1)
		}
	}
}

// drawVersion draws the two copies of version information for versions
// 7 and up; versions below 7 carry no version block.
func (b *builder) drawVersion() {
	if b.version < 7 {
		return
	}

	rem := b.version
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem>>11)*0x1F25
	}
	bits := b.version<<12 | rem
	if bits>>18 != 0 {
		panic("unreachable: incorrect version bits calculation")
	}

	for i := 0; i < 18; i++ {
		bit := getBitAsBool(bits, i)
		a := b.size - 11 + i%3
		c := i / 3
		b.setFunctionModule(a, c, bit)
		b.setFunctionModule(c, a, bit)
	}
}

// drawFormatBits draws the two copies of format information (error
// correction level and mask, BCH-protected) for the given mask.
func (b *builder) drawFormatBits(mask int) {
	data := b.ecl.formatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem>>9)*0x537
	}
	bits := data<<10 | rem ^ 0x5412
	if bits>>15 != 0 {
		panic("unreachable: incorrect format bits calculation")
	}

	for i := 0; i <= 5; i++ {
		b.setFunctionModule(8, i, getBitAsBool(bits, i))
	}
	b.setFunctionModule(8, 7, getBitAsBool(bits, 6))
	b.setFunctionModule(8, 8, getBitAsBool(bits, 7))
	b.setFunctionModule(7, 8, getBitAsBool(bits, 8))
	for i := 9; i < 15; i++ {
		b.setFunctionModule(14-i, 8, getBitAsBool(bits, i))
	}

	for i := 0; i < 8; i++ {
		b.setFunctionModule(b.size-1-i, 8, getBitAsBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		b.setFunctionModule(8, b.size-15+i, getBitAsBool(bits, i))
	}
	b.setFunctionModule(8, b.size-8, true) // Always dark.
}

// drawCodewords draws data (including its ECC and interleaving) onto
// every non-function module, in the zig-zag column order ISO/IEC 18004
// specifies. drawFunctionPatterns must run first so is-function is fully
// marked.
func (b *builder) drawCodewords(data []byte) {
	if len(data) != numRawDataModules[b.version]/8 {
		panic("unreachable: incorrect codeword data length")
	}

	i := 0
	for right := b.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5
		}
		for vert := 0; vert < b.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				upward := (right+1)&2 == 0

				var y int
				if upward {
					y = b.size - 1 - vert
				} else {
					y = vert
				}

				if !b.isFunction[y][x] && i < len(data)*8 {
					b.modules[y][x] = getBit(int(data[i>>3]), 7-(i&7)) == 1
					i++
				}
				// Any remainder bits (0-7) stay light, as set at construction.
			}
		}
	}

	if i != len(data)*8 {
		panic("unreachable: not all codeword bits were placed")
	}
}
