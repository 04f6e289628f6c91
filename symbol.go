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
	"fmt"
	"strings"
)

// Symbol is a completed QR code: an immutable square grid of modules,
// together with the version, error correction level, and mask that
// produced it. Construct one via EncodeText, EncodeBinary, or
// EncodeSegments.
type Symbol struct {
	version int
	size    int
	ecl     Ecc
	mask    int
	modules [][]bool
}

// Version returns the symbol's version, in [1,40].
func (s *Symbol) Version() int { return s.version }

// Size returns the symbol's width and height in modules (4*Version+17).
func (s *Symbol) Size() int { return s.size }

// ECL returns the error correction level actually used, which may be
// higher than what was requested if ECL boosting applied.
func (s *Symbol) ECL() Ecc { return s.ecl }

// Mask returns the mask pattern (0-7) applied to the symbol.
func (s *Symbol) Mask() int { return s.mask }

// GetModule reports whether the module at (x, y) is dark. Coordinates
// outside [0,Size) are treated as light rather than panicking, so callers
// can probe a one-module border without bounds-checking first.
func (s *Symbol) GetModule(x, y int) bool {
	if x < 0 || x >= s.size || y < 0 || y >= s.size {
		return false
	}
	return s.modules[y][x]
}

// String renders the symbol as a block-character grid, for debugging in a
// terminal; it is not a supported rendering format.
func (s *Symbol) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Symbol{version=%d, size=%d, ecl=%s, mask=%d}\n", s.version, s.size, s.ecl, s.mask)
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.modules[y][x] {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToSVGString renders the symbol as a minimal SVG document: a white
// background rectangle and a single black path covering every dark
// module, padded by border light modules on each side. It returns an
// error if border is negative.
func (s *Symbol) ToSVGString(border int) (string, error) {
	if border < 0 {
		return "", &InvalidArgumentError{Msg: "border must be non-negative"}
	}

	dim := s.size + border*2
	var sb strings.Builder
	fmt.Fprintf(&sb, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", dim)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if !s.modules[y][x] {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}

// EncodeText encodes text as a QR code at the given error correction
// level, using MakeSegments' automatic mode choice.
func EncodeText(text string, ecl Ecc) (*Symbol, error) {
	return EncodeSegments(MakeSegments(text), ecl)
}

// EncodeBinary encodes an arbitrary byte slice as a single byte-mode
// segment at the given error correction level.
func EncodeBinary(data []byte, ecl Ecc) (*Symbol, error) {
	return EncodeSegments([]*Segment{MakeBytes(data)}, ecl)
}

// EncodeSegments is the full-control entry point: it accepts segments
// built by any combination of the Make* factories, plus WithMinVersion,
// WithMaxVersion, WithMask, WithAutoMask, and WithBoostECL options. By
// default it searches versions 1-40, boosts the error correction level
// when a version has spare capacity, and auto-selects the lowest-penalty
// mask.
func EncodeSegments(segs []*Segment, ecl Ecc, options ...Option) (*Symbol, error) {
	opts := encodingOptions{
		minVersion: MinVersion,
		maxVersion: MaxVersion,
		mask:       -1,
		boostECL:   true,
	}
	for _, o := range options {
		o(&opts)
	}

	dataCodewords, version, finalEcl, err := assembleDataCodewords(segs, ecl, opts)
	if err != nil {
		return nil, err
	}

	b := newBuilder(version, finalEcl)
	b.drawFunctionPatterns()
	allCodewords := addECCAndInterleave(dataCodewords, finalEcl, version)
	b.drawCodewords(allCodewords)
	mask := b.selectAndApplyMask(opts.mask)

	return &Symbol{
		version: version,
		size:    b.size,
		ecl:     finalEcl,
		mask:    mask,
		modules: b.modules,
	}, nil
}
