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

// Package bits implements Bits, the arbitrary-width unsigned bit-vector
// value that carries Verilog expression and assignment semantics for every
// signal, register, wire, literal and intermediate result in a simulation.
package bits

import (
	"fmt"
	"math/big"
)

// Bits is a sized, unsigned bit-vector: a pair of a width w in [1, 65535]
// and a magnitude m in [0, 2^w). The canonical form invariant 0 <= m < 2^w
// holds at every point a *Bits is observed by a caller.
//
// A *Bits is owned exclusively by whatever holds it (an input slot, a state
// slot, an AST literal); it is never aliased. Every operator below mutates
// the receiver in place and returns it, mirroring the reference Bits class
// this type reimplements.
type Bits struct {
	width uint16
	mag   big.Int
	// scratch is per-instance working space for operators that need an
	// intermediate mask or shifted copy. It is never observed externally and
	// is reset (via SetUint64/SetInt64/Set) before every use.
	scratch big.Int
}

// New constructs a Bits of the given width initialised from a uint64,
// truncated (per the canonical form invariant) to that width. Panics if
// width is zero.
func New(width uint16, val uint64) *Bits {
	if width == 0 {
		fail("New", "width must be at least 1")
	}
	//
	b := &Bits{width: width}
	b.mag.SetUint64(val)
	b.trim()
	//
	return b
}

// Zero constructs a Bits of the given width with magnitude 0.
func Zero(width uint16) *Bits {
	return New(width, 0)
}

// Clone returns an independent copy of this Bits; no state is shared with
// the receiver.
func (b *Bits) Clone() *Bits {
	c := &Bits{width: b.width}
	c.mag.Set(&b.mag)
	//
	return c
}

// Width returns the declared bit length of this value.
func (b *Bits) Width() uint16 {
	return b.width
}

// String renders this value in the manner of a sized Verilog literal, e.g.
// "8'd255".
func (b *Bits) String() string {
	return fmt.Sprintf("%d'd%s", b.width, b.mag.String())
}

// trim canonicalises the magnitude to the receiver's current width.
func (b *Bits) trim() {
	b.trimTo(b.width)
}

// trimTo reduces the magnitude modulo 2^n. Panics if n is zero.
func (b *Bits) trimTo(n uint16) {
	if n == 0 {
		fail("trim", "width must be at least 1")
	}
	//
	b.scratch.SetUint64(1)
	b.scratch.Lsh(&b.scratch, uint(n))
	b.scratch.Sub(&b.scratch, big.NewInt(1))
	b.mag.And(&b.mag, &b.scratch)
}

// maxWidth returns the wider of two widths, per the width-discipline rule
// that binary word-valued operations produce width max(w_a, w_b).
func maxWidth(a, b uint16) uint16 {
	if a > b {
		return a
	}
	//
	return b
}

// setBool collapses the receiver to a width-1 boolean-valued result.
func (b *Bits) setBool(v bool) *Bits {
	if v {
		b.mag.SetUint64(1)
	} else {
		b.mag.SetUint64(0)
	}
	//
	b.width = 1
	//
	return b
}
