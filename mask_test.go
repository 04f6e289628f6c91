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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMaskIsSelfInverse(t *testing.T) {
	b := newBuilder(5, Quartile)
	b.drawFunctionPatterns()

	before := cloneGrid(b.modules)
	b.applyMask(3)
	b.applyMask(3)
	assert.Equal(t, before, b.modules)
}

func TestSelectAndApplyMaskPicksMinimumPenalty(t *testing.T) {
	b := newBuilder(2, Medium)
	b.drawFunctionPatterns()
	data := make([]byte, numRawDataModules[2]/8)
	b.drawCodewords(data)

	penalties := make([]int, 8)
	for i := 0; i < 8; i++ {
		b.applyMask(i)
		b.drawFormatBits(i)
		penalties[i] = b.getPenaltyScore()
		b.applyMask(i)
	}

	minPenalty := penalties[0]
	minIndex := 0
	for i, p := range penalties {
		if p < minPenalty {
			minPenalty = p
			minIndex = i
		}
	}

	chosen := b.selectAndApplyMask(-1)
	assert.Equal(t, minIndex, chosen)
}

func TestSelectAndApplyMaskHonorsExplicitChoice(t *testing.T) {
	b := newBuilder(1, Low)
	b.drawFunctionPatterns()
	data := make([]byte, numRawDataModules[1]/8)
	b.drawCodewords(data)

	chosen := b.selectAndApplyMask(3)
	assert.Equal(t, 3, chosen)
}

func cloneGrid(grid [][]bool) [][]bool {
	out := make([][]bool, len(grid))
	for i, row := range grid {
		out[i] = append([]bool(nil), row...)
	}
	return out
}
