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

func abs(a int) int {
	if a >= 0 {
		return a
	}
	return -a
}

func bToI(b bool) int {
	if b {
		return 1
	}
	return 0
}

func getBit(x, i int) int {
	return x >> uint(i) & 1
}

func getBitAsBool(x, i int) bool {
	return x>>uint(i)&1 == 1
}
