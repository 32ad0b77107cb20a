// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package bits

// Equals is Go-level equality (P3): both the width and the magnitude must
// match. Contrast with Equal, which is Verilog '==' and ignores width.
func (b *Bits) Equals(rhs *Bits) bool {
	return b.width == rhs.width && b.mag.Cmp(&rhs.mag) == 0
}

// Less is lexicographic: width is compared first, and the magnitude is only
// consulted as a tiebreaker between equal-width operands.
func (b *Bits) Less(rhs *Bits) bool {
	if b.width != rhs.width {
		return b.width < rhs.width
	}
	//
	return b.mag.Cmp(&rhs.mag) < 0
}
