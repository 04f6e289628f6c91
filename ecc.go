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

// Ecc represents the error correction level of a QR code: the fraction of
// codewords that can be corrupted and still be recoverable by a scanner.
type Ecc int8

// Ecc values, in ascending order of recovery capacity. The ordinal (its
// position here) indexes the per-version capacity tables in tables.go.
const (
	Low      Ecc = iota // Recovers approximately 7% of data.
	Medium              // Recovers approximately 15% of data.
	Quartile            // Recovers approximately 25% of data.
	High                // Recovers approximately 30% of data.
)

// formatBits returns the 2-bit value packed into format information, which
// is not the same as the ordinal above (ISO/IEC 18004 table 25).
func (e Ecc) formatBits() int {
	switch e {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("unreachable: unknown ECC level")
	}
}

// String renders the level's conventional single-letter abbreviation.
func (e Ecc) String() string {
	switch e {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}
