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

import "math/big"

// And computes the pointwise bitwise AND of the receiver and rhs. The
// result's magnitude is necessarily already in range, so no trim is
// required.
func (b *Bits) And(rhs *Bits) *Bits {
	b.mag.And(&b.mag, &rhs.mag)
	b.width = maxWidth(b.width, rhs.width)
	//
	return b
}

// Or computes the pointwise bitwise OR of the receiver and rhs.
func (b *Bits) Or(rhs *Bits) *Bits {
	b.mag.Or(&b.mag, &rhs.mag)
	b.width = maxWidth(b.width, rhs.width)
	//
	return b
}

// Xor computes the pointwise bitwise XOR of the receiver and rhs.
func (b *Bits) Xor(rhs *Bits) *Bits {
	b.mag.Xor(&b.mag, &rhs.mag)
	b.width = maxWidth(b.width, rhs.width)
	//
	return b
}

// Xnor computes the pointwise complement of Xor.
func (b *Bits) Xnor(rhs *Bits) *Bits {
	b.Xor(rhs)
	//
	return b.Not()
}

// Not computes (2^w - 1) - m, the bitwise complement within the receiver's
// width.
func (b *Bits) Not() *Bits {
	b.mag.Not(&b.mag)
	b.trim()
	//
	return b
}

// ShiftLeftLogical shifts the receiver left by rhs.ToInt() bits; bits
// shifted past position w-1 are dropped. Keeps the receiver's width.
func (b *Bits) ShiftLeftLogical(rhs *Bits) *Bits {
	b.mag.Lsh(&b.mag, uint(rhs.ToInt()))
	b.trim()
	//
	return b
}

// ShiftLeftArith is identical to ShiftLeftLogical; Verilog draws no
// distinction between arithmetic and logical left shift.
func (b *Bits) ShiftLeftArith(rhs *Bits) *Bits {
	return b.ShiftLeftLogical(rhs)
}

// ShiftRightLogical shifts the receiver right by rhs.ToInt() bits, shifting
// in zeros. Keeps the receiver's width; no trim is required since a right
// shift can only reduce the magnitude.
func (b *Bits) ShiftRightLogical(rhs *Bits) *Bits {
	b.mag.Rsh(&b.mag, uint(rhs.ToInt()))
	//
	return b
}

// ShiftRightArith shifts the receiver right by rhs.ToInt() bits, replicating
// the original sign bit (bit w-1) into the vacated high bits. Shift amounts
// at or past the width saturate to all-zero or all-one depending on that
// sign bit, per the documented boundary behavior for shift-by-width.
func (b *Bits) ShiftRightArith(rhs *Bits) *Bits {
	var (
		amt     = uint(rhs.ToInt())
		w       = uint(b.width)
		signSet = b.mag.Bit(int(w-1)) == 1
	)
	//
	if amt >= w {
		if signSet {
			b.mag.SetUint64(1)
			b.mag.Lsh(&b.mag, w)
			b.mag.Sub(&b.mag, big.NewInt(1))
		} else {
			b.mag.SetUint64(0)
		}
		//
		return b
	}
	//
	b.mag.Rsh(&b.mag, amt)
	//
	if signSet {
		b.scratch.SetUint64(1)
		b.scratch.Lsh(&b.scratch, amt)
		b.scratch.Sub(&b.scratch, big.NewInt(1))
		b.scratch.Lsh(&b.scratch, w-amt)
		b.mag.Or(&b.mag, &b.scratch)
	}
	//
	return b
}
