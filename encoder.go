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

import "fmt"

// encodingOptions holds the parameters EncodeSegments accepts beyond the
// segments and the requested error correction level.
type encodingOptions struct {
	minVersion int
	maxVersion int
	mask       int // -1 means automatic mask selection.
	boostECL   bool
}

// Option configures an EncodeSegments call.
type Option func(*encodingOptions)

// WithMinVersion sets the smallest version the encoder may choose.
func WithMinVersion(version int) Option {
	return func(o *encodingOptions) { o.minVersion = version }
}

// WithMaxVersion sets the largest version the encoder may choose.
func WithMaxVersion(version int) Option {
	return func(o *encodingOptions) { o.maxVersion = version }
}

// WithMask fixes the mask pattern to use instead of searching all eight
// for the lowest penalty score.
func WithMask(mask int) Option {
	return func(o *encodingOptions) { o.mask = mask }
}

// WithAutoMask restores automatic mask selection (the default).
func WithAutoMask() Option {
	return func(o *encodingOptions) { o.mask = -1 }
}

// WithBoostECL controls whether the encoder raises the error correction
// level above what was requested when the chosen version has room to
// spare. Defaults to true.
func WithBoostECL(boost bool) Option {
	return func(o *encodingOptions) { o.boostECL = boost }
}

// assembleDataCodewords runs segmentation's output through version
// selection, optional ECL boosting, bit concatenation, and padding. It
// returns the packed data codewords, the chosen version, and the final
// (possibly boosted) error correction level.
func assembleDataCodewords(segs []*Segment, ecl Ecc, opts encodingOptions) ([]byte, int, Ecc, error) {
	if opts.minVersion < MinVersion || MaxVersion < opts.maxVersion || opts.maxVersion < opts.minVersion {
		return nil, 0, 0, &InvalidArgumentError{Msg: "invalid version range"}
	}
	if opts.mask < -1 || opts.mask > 7 {
		return nil, 0, 0, &InvalidArgumentError{Msg: "mask value out of range"}
	}

	version := opts.minVersion
	var dataUsedBits int
	for {
		dataCapacityBits := numDataCodewords[ecl][version] * 8
		dataUsedBits = getTotalBits(segs, version)
		if dataUsedBits != -1 && dataUsedBits <= dataCapacityBits {
			break
		}
		if version >= opts.maxVersion {
			if dataUsedBits != -1 {
				return nil, 0, 0, &DataTooLongError{UsedBits: dataUsedBits, CapacityBits: dataCapacityBits}
			}
			return nil, 0, 0, fmt.Errorf("data too long")
		}
		version++
	}

	if opts.boostECL {
		for newEcl := Medium; newEcl <= High; newEcl++ {
			if dataUsedBits <= numDataCodewords[newEcl][version]*8 {
				ecl = newEcl
			}
		}
	}

	bb := make(bitBuffer, 0, numDataCodewords[ecl][version]*8)
	for _, seg := range segs {
		bb.appendBits(int(seg.Mode.modeBits), 4)
		bb.appendBits(seg.NumChars, seg.Mode.charCountBits(version))
		bb = append(bb, seg.Data...)
	}
	if len(bb) != dataUsedBits {
		panic("unreachable: incorrect data size calculation")
	}

	dataCapacityBits := numDataCodewords[ecl][version] * 8
	if len(bb) > dataCapacityBits {
		panic("unreachable: incorrect data size calculation")
	}

	bb.appendBits(0, min(4, dataCapacityBits-len(bb))) // Terminator.
	bb.appendBits(0, (8-len(bb)%8)%8)                  // Byte alignment.
	if len(bb)%8 != 0 {
		panic("unreachable: incorrect data size calculation")
	}

	for padByte := 0xEC; len(bb) < dataCapacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.appendBits(padByte, 8)
	}

	return bb.packBytes(), version, ecl, nil
}
