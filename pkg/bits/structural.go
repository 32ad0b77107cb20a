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

// maxWidthValue is the largest width a Bits may hold (spec.md P2).
const maxWidthValue = 65535

// Concat appends rhs's bits below the receiver's, producing width w_a + w_b
// with the receiver occupying the high bits. Panics if the combined width
// would exceed the 65535-bit ceiling (this spec's resolution of the
// concat-overflow open question).
func (b *Bits) Concat(rhs *Bits) *Bits {
	combined := uint32(b.width) + uint32(rhs.width)
	if combined > maxWidthValue {
		fail("Concat", "combined width exceeds 65535 bits")
	}
	//
	b.mag.Lsh(&b.mag, uint(rhs.width))
	b.mag.Or(&b.mag, &rhs.mag)
	b.width = uint16(combined)
	//
	return b
}

// SliceBit extracts the single bit at position idx, collapsing the receiver
// to width 1. Panics if idx >= w.
func (b *Bits) SliceBit(idx uint) *Bits {
	if idx >= uint(b.width) {
		fail("SliceBit", "index out of range")
	}
	//
	return b.setBool(b.mag.Bit(int(idx)) == 1)
}

// Slice extracts the bit range [lsb, msb], producing width msb-lsb+1. Panics
// if lsb > msb or msb >= w.
func (b *Bits) Slice(msb, lsb uint) *Bits {
	if lsb > msb || msb >= uint(b.width) {
		fail("Slice", "malformed or out-of-range bit range")
	}
	//
	newWidth := msb - lsb + 1
	b.mag.Rsh(&b.mag, lsb)
	b.trimTo(uint16(newWidth))
	b.width = uint16(newWidth)
	//
	return b
}

// Flip toggles the bit at position idx, leaving the width unchanged. Panics
// if idx >= w.
func (b *Bits) Flip(idx uint) *Bits {
	if idx >= uint(b.width) {
		fail("Flip", "index out of range")
	}
	//
	b.mag.SetBit(&b.mag, int(idx), 1-b.mag.Bit(int(idx)))
	//
	return b
}

// SetBit assigns the bit at position idx, leaving the width unchanged.
// Panics if idx >= w.
func (b *Bits) SetBit(idx uint, v bool) *Bits {
	if idx >= uint(b.width) {
		fail("SetBit", "index out of range")
	}
	//
	val := uint(0)
	if v {
		val = 1
	}
	//
	b.mag.SetBit(&b.mag, int(idx), val)
	//
	return b
}

// Assign copies rhs's magnitude into the receiver and re-canonicalises to
// the receiver's own (unchanged) width.
func (b *Bits) Assign(rhs *Bits) *Bits {
	b.mag.Set(&rhs.mag)
	if rhs.width > b.width {
		b.trim()
	}
	//
	return b
}

// AssignBit assigns bit idx of the receiver from rhs's bit 0. Panics if
// idx >= w.
func (b *Bits) AssignBit(idx uint, rhs *Bits) *Bits {
	if idx >= uint(b.width) {
		fail("AssignBit", "index out of range")
	}
	//
	b.mag.SetBit(&b.mag, int(idx), rhs.mag.Bit(0))
	//
	return b
}

// AssignSlice replaces the bit range [lsb, msb] with the low msb-lsb+1 bits
// of rhs. Degenerates to AssignBit when msb == lsb, matching the reference
// implementation. Panics if lsb > msb or msb >= w.
func (b *Bits) AssignSlice(msb, lsb uint, rhs *Bits) *Bits {
	if msb == lsb {
		return b.AssignBit(msb, rhs)
	}
	//
	if lsb > msb || msb >= uint(b.width) {
		fail("AssignSlice", "malformed or out-of-range bit range")
	}
	//
	width := msb - lsb + 1
	//
	var mask big.Int
	mask.SetUint64(1)
	mask.Lsh(&mask, width)
	mask.Sub(&mask, big.NewInt(1))
	//
	var cleared big.Int
	cleared.Set(&mask)
	cleared.Lsh(&cleared, lsb)
	cleared.Not(&cleared)
	b.mag.And(&b.mag, &cleared)
	//
	var low big.Int
	low.And(&mask, &rhs.mag)
	low.Lsh(&low, lsb)
	b.mag.Or(&b.mag, &low)
	//
	return b
}

// EqualBit reports whether bit idx of the receiver equals bit 0 of rhs.
// Panics if idx >= w.
func (b *Bits) EqualBit(rhs *Bits, idx uint) bool {
	if idx >= uint(b.width) {
		fail("EqualBit", "index out of range")
	}
	//
	return b.mag.Bit(int(idx)) == rhs.mag.Bit(0)
}

// EqualSlice reports whether the receiver's bit range [lsb, msb] equals
// rhs's magnitude. Panics if lsb > msb or msb >= w.
func (b *Bits) EqualSlice(rhs *Bits, msb, lsb uint) bool {
	if lsb > msb || msb >= uint(b.width) {
		fail("EqualSlice", "malformed or out-of-range bit range")
	}
	//
	var tmp big.Int
	tmp.Rsh(&b.mag, lsb)
	//
	var mask big.Int
	mask.SetUint64(1)
	mask.Lsh(&mask, msb-lsb+1)
	mask.Sub(&mask, big.NewInt(1))
	tmp.And(&tmp, &mask)
	//
	return tmp.Cmp(&rhs.mag) == 0
}
