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

// MinVersion and MaxVersion bound the QR code version (symbol size)
// range: version v has size 4v+17 modules per side.
const (
	MinVersion = 1
	MaxVersion = 40
)

var (
	// eccCodewordsPerBlock[ecl][version] is the number of error-correction
	// codewords per Reed-Solomon block. Index 0 in the version axis is
	// unused padding (versions start at 1).
	eccCodewordsPerBlock = [4][41]int{
		// 0,   1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	// numErrorCorrectionBlocks[ecl][version] is the number of Reed-Solomon
	// blocks the data codewords are split across.
	numErrorCorrectionBlocks = [4][41]int{
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	// numRawDataModules[version] is the number of data-bearing modules
	// (including any remainder bits) after all function patterns are
	// excluded, derived in init().
	numRawDataModules [41]int

	// numDataCodewords[ecl][version] is numRawDataModules[version]/8 minus
	// the error-correction codewords across all blocks, derived in init().
	numDataCodewords [4][41]int

	// alignmentPatternPositions[version] caches getAlignmentPatternPositions.
	alignmentPatternPositions [41][]int

	// reedSolomonDivisors caches generator polynomials by degree (== ECC
	// codewords per block), since the same degree recurs across versions.
	reedSolomonDivisors = make(map[int][]byte)
)

func init() {
	for v := MinVersion; v <= MaxVersion; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55 // Subtract alignment patterns.
			if v >= 7 {
				result -= 36 // Subtract version information.
			}
		}
		if result < 208 || result > 29648 {
			panic("unreachable: numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	for e := Low; e <= High; e++ {
		for v := MinVersion; v <= MaxVersion; v++ {
			numDataCodewords[e][v] = numRawDataModules[v]/8 - eccCodewordsPerBlock[e][v]*numErrorCorrectionBlocks[e][v]
		}
	}

	for e := 0; e < 4; e++ {
		for v := MinVersion; v <= MaxVersion; v++ {
			degree := eccCodewordsPerBlock[e][v]
			if _, ok := reedSolomonDivisors[degree]; !ok {
				reedSolomonDivisors[degree] = reedSolomonComputeDivisor(degree)
			}
		}
	}

	for v := MinVersion; v <= MaxVersion; v++ {
		alignmentPatternPositions[v] = getAlignmentPatternPositions(v)
	}
}

// getAlignmentPatternPositions returns the ascending list of alignment
// pattern center coordinates (used on both axes) for the given version.
func getAlignmentPatternPositions(version int) []int {
	if version == 1 {
		return []int{}
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // Special snowflake per ISO/IEC 18004.
		step = 26
	} else {
		step = (version*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}
