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

import (
	"math/big"
	"unsafe"
)

// word is the set of types ReadWord and WriteWord may traffic in: the
// fixed-width unsigned machine integers a compute core marshals Bits
// payloads through.
type word interface {
	uint8 | uint16 | uint32 | uint64
}

// wordRange returns the half-open bit interval [lo, hi) occupied by the n'th
// T-sized word of a value with the given width, clipped to that width. A
// method cannot introduce its own type parameter, so this logic is factored
// out for use by both ReadWord and WriteWord.
func wordRange[T word](n uint, width uint16) (lo, hi uint) {
	var sample T
	bitsPerWord := uint(unsafe.Sizeof(sample)) * 8
	//
	lo = n * bitsPerWord
	hi = lo + bitsPerWord
	//
	if hi > uint(width) {
		hi = uint(width)
	}
	//
	if lo > hi {
		lo = hi
	}
	//
	return lo, hi
}

// ReadWord extracts the n'th T-sized word from b, numbered from the
// least-significant end. A word straddling the top of b's range is clipped
// rather than sign- or zero-extended from outside the value; a word
// entirely beyond the top of the range reads as zero.
func ReadWord[T word](b *Bits, n uint) T {
	lo, hi := wordRange[T](n, b.width)
	if lo >= hi {
		return 0
	}
	//
	var tmp big.Int
	tmp.Rsh(&b.mag, lo)
	//
	var mask big.Int
	mask.SetUint64(1)
	mask.Lsh(&mask, hi-lo)
	mask.Sub(&mask, big.NewInt(1))
	tmp.And(&tmp, &mask)
	//
	return T(tmp.Uint64())
}

// WriteWord overwrites the n'th T-sized word of b with val, numbered from
// the least-significant end, clipping to b's range exactly as ReadWord
// does. A word entirely beyond the top of the range is a no-op.
func WriteWord[T word](b *Bits, n uint, val T) {
	lo, hi := wordRange[T](n, b.width)
	if lo >= hi {
		return
	}
	//
	var mask big.Int
	mask.SetUint64(1)
	mask.Lsh(&mask, hi-lo)
	mask.Sub(&mask, big.NewInt(1))
	//
	var cleared big.Int
	cleared.Set(&mask)
	cleared.Lsh(&cleared, lo)
	cleared.Not(&cleared)
	b.mag.And(&b.mag, &cleared)
	//
	var inserted big.Int
	inserted.SetUint64(uint64(val))
	inserted.And(&inserted, &mask)
	inserted.Lsh(&inserted, lo)
	b.mag.Or(&b.mag, &inserted)
}
