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

// This file implements arithmetic in GF(2^8) with the QR code's primitive
// polynomial 0x11D (x^8 + x^4 + x^3 + x^2 + 1), and the Reed-Solomon
// generator-polynomial and remainder computations built on it.

// reedSolomonMultiply returns the product of two field elements in
// GF(2^8)/0x11D, via Russian-peasant multiplication.
func reedSolomonMultiply(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ (z>>7)*0x11D
		z ^= int(y>>uint(i)&1) * int(x)
	}
	return byte(z)
}

// reedSolomonComputeDivisor builds the generator polynomial of the given
// degree: the product (x - 2^0)(x - 2^1)...(x - 2^(degree-1)) over
// GF(2^8)/0x11D, with the leading x^degree term dropped (it is always 1).
// Coefficients are stored highest-degree first.
func reedSolomonComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("reedSolomonComputeDivisor: degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start at the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		for j := 0; j < len(result); j++ {
			result[j] = reedSolomonMultiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = reedSolomonMultiply(root, 0x02)
	}

	return result
}

// reedSolomonComputeRemainder divides data by divisor over GF(2^8)/0x11D
// and returns the remainder, which has the same length as divisor.
func reedSolomonComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i, coefficient := range divisor {
			result[i] ^= reedSolomonMultiply(coefficient, factor)
		}
	}
	return result
}
