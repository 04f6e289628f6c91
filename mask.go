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

import "math"

// Penalty weights applied by the four scoring rules in getPenaltyScore.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// applyMask XORs every non-function module with the result of the given
// mask's condition. Applying the same mask twice is a no-op, since XOR is
// its own inverse.
func (b *builder) applyMask(mask int) {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			var invert bool
			switch mask {
			case 0:
				invert = (x+y)%2 == 0
			case 1:
				invert = y%2 == 0
			case 2:
				invert = x%3 == 0
			case 3:
				invert = (x+y)%3 == 0
			case 4:
				invert = (x/3+y/2)%2 == 0
			case 5:
				invert = x*y%2+x*y%3 == 0
			case 6:
				invert = (x*y%2+x*y%3)%2 == 0
			case 7:
				invert = ((x+y)%2+x*y%3)%2 == 0
			default:
				panic("applyMask: illegal mask value")
			}
			if invert && !b.isFunction[y][x] {
				b.modules[y][x] = !b.modules[y][x]
			}
		}
	}
}

// selectAndApplyMask picks the mask to commit: if requested is -1, all
// eight candidates are scored (apply, draw format bits, score, undo) and
// the lowest-penalty index wins ties broken toward the lower index;
// otherwise the requested mask is used as-is. Either way, the chosen mask
// is applied once and its format bits are the last thing drawn.
func (b *builder) selectAndApplyMask(requested int) int {
	mask := requested
	if mask == -1 {
		minPenalty := math.MaxInt32
		for i := 0; i < 8; i++ {
			b.applyMask(i)
			b.drawFormatBits(i)
			penalty := b.getPenaltyScore()
			if penalty < minPenalty {
				mask = i
				minPenalty = penalty
			}
			b.applyMask(i) // Undo: XOR is self-inverse.
		}
	}

	if mask < 0 || mask > 7 {
		panic("selectAndApplyMask: illegal mask value")
	}

	b.applyMask(mask)
	b.drawFormatBits(mask)
	return mask
}

// getPenaltyScore sums the four ISO/IEC 18004 mask-penalty rules over the
// current module grid: same-color runs and finder-like patterns (rows and
// columns), 2x2 same-color blocks, and the dark/light balance.
func (b *builder) getPenaltyScore() int {
	result := 0

	for y := 0; y < b.size; y++ {
		runColor := false
		runX := 0
		var runHistory [7]int
		for x := 0; x < b.size; x++ {
			if b.modules[y][x] == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				b.finderPenaltyAddHistory(runX, &runHistory)
				if !runColor {
					result += b.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = b.modules[y][x]
				runX = 1
			}
		}
		result += b.finderPenaltyTerminateAndCount(runColor, runX, &runHistory) * penaltyN3
	}

	for x := 0; x < b.size; x++ {
		runColor := false
		runY := 0
		var runHistory [7]int
		for y := 0; y < b.size; y++ {
			if b.modules[y][x] == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				b.finderPenaltyAddHistory(runY, &runHistory)
				if !runColor {
					result += b.finderPenaltyCountPatterns(&runHistory) * penaltyN3
				}
				runColor = b.modules[y][x]
				runY = 1
			}
		}
		result += b.finderPenaltyTerminateAndCount(runColor, runY, &runHistory) * penaltyN3
	}

	for y := 0; y < b.size-1; y++ {
		for x := 0; x < b.size-1; x++ {
			color := b.modules[y][x]
			if color == b.modules[y][x+1] && color == b.modules[y+1][x] && color == b.modules[y+1][x+1] {
				result += penaltyN2
			}
		}
	}

	dark := 0
	for _, row := range b.modules {
		for _, m := range row {
			if m {
				dark++
			}
		}
	}
	total := b.size * b.size
	k := (abs(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the
// run-length history, dropping the oldest entry. A fresh history (its
// front slot still zero) implicitly starts with a light border the width
// of the whole symbol, per ISO/IEC 18004's penalty rule 3.
func (b *builder) finderPenaltyAddHistory(currentRunLength int, runHistory *[7]int) {
	if runHistory[0] == 0 {
		currentRunLength += b.size
	}
	copy(runHistory[1:], runHistory[:6])
	runHistory[0] = currentRunLength
}

// finderPenaltyCountPatterns reports how many of the two finder-like
// 1:1:3:1:1 run signatures are present in the history.
func (b *builder) finderPenaltyCountPatterns(runHistory *[7]int) int {
	n := runHistory[1]
	if n > b.size*3 {
		panic("unreachable: bad run history")
	}
	core := n > 0 && runHistory[2] == n && runHistory[3] == n*3 && runHistory[4] == n && runHistory[5] == n
	return bToI(core && runHistory[0] >= n*4 && runHistory[6] >= n) + bToI(core && runHistory[6] >= n*4 && runHistory[0] >= n)
}

// finderPenaltyTerminateAndCount closes out the trailing run of a row or
// column (accounting for its implicit light border) and scores it.
func (b *builder) finderPenaltyTerminateAndCount(runColor bool, runLength int, runHistory *[7]int) int {
	if runColor {
		b.finderPenaltyAddHistory(runLength, runHistory)
		runLength = 0
	}
	runLength += b.size
	b.finderPenaltyAddHistory(runLength, runHistory)
	return b.finderPenaltyCountPatterns(runHistory)
}
