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
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

// Package qrcodegen turns text or binary payloads into QR Code Model 2
// symbols (ISO/IEC 18004). It covers segmentation, version selection and
// error-correction-level boosting, Reed-Solomon codeword assembly, and
// matrix construction including mask selection. Decoding, Micro QR, and
// raster image output are not in scope; Symbol.ToSVGString is the only
// rendering helper.
//
// The package is single-threaded, synchronous, and pure: every exported
// function is a deterministic transform of its arguments with no I/O and
// no shared mutable state, so Segments and Symbols may be read freely
// from multiple goroutines once constructed.
package qrcodegen
