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

// addECCAndInterleave splits data into the blocks prescribed for
// (ecl, version), appends each block's Reed-Solomon remainder, and
// interleaves the blocks' data bytes and then their ECC bytes column by
// column, skipping the padding slot that short blocks lack. The result
// has length numRawDataModules[version]/8.
func addECCAndInterleave(data []byte, ecl Ecc, version int) []byte {
	if len(data) != numDataCodewords[ecl][version] {
		panic("unreachable: data is not the correct length")
	}

	numBlocks := numErrorCorrectionBlocks[ecl][version]
	blockECCLen := eccCodewordsPerBlock[ecl][version]
	rawCodewords := numRawDataModules[version] / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	blocks := make([][]byte, numBlocks)
	rsDiv := reedSolomonDivisors[blockECCLen]
	for i, k := 0, 0; i < numBlocks; i++ {
		dat := data[k : k+shortBlockLen-blockECCLen+bToI(i >= numShortBlocks)]
		k += len(dat)
		block := make([]byte, shortBlockLen+1)
		copy(block, dat)
		ecc := reedSolomonComputeRemainder(dat, rsDiv)
		copy(block[len(block)-len(ecc):], ecc)
		blocks[i] = block
	}

	result := make([]byte, rawCodewords)
	k := 0
	for i := 0; i < len(blocks[0]); i++ {
		for j := 0; j < len(blocks); j++ {
			// Short blocks are one byte shorter of data; skip their
			// missing slot at this column instead of reading padding.
			if i != shortBlockLen-blockECCLen || j >= numShortBlocks {
				result[k] = blocks[j][i]
				k++
			}
		}
	}

	return result
}
