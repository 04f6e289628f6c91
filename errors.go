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

// InvalidArgumentError reports a caller-supplied value outside the range
// this package accepts: a version, mask, or ECI value out of bounds, a
// bit width or field value that doesn't fit, and similar range checks.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.Msg
}

// DataTooLongError reports that a segment list does not fit in any
// version in the requested range at the requested error correction
// level. UsedBits is the bit length the data would need; CapacityBits is
// the capacity of the largest version tried (max_version), for comparison.
// When a segment's character count does not fit its count field at every
// version tried, the encoder returns a plain error instead of this type.
type DataTooLongError struct {
	UsedBits     int
	CapacityBits int
}

func (e *DataTooLongError) Error() string {
	return fmt.Sprintf("data length = %d bits, max capacity = %d bits", e.UsedBits, e.CapacityBits)
}
