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

	log "github.com/sirupsen/logrus"
)

// UnaryPlus is the identity operation.
func (b *Bits) UnaryPlus() *Bits {
	return b
}

// UnaryMinus negates the receiver within its own width (two's-complement
// negation).
func (b *Bits) UnaryMinus() *Bits {
	b.mag.Neg(&b.mag)
	b.trim()
	//
	return b
}

// Add computes the receiver plus rhs, truncated to max(w_a, w_b) bits.
func (b *Bits) Add(rhs *Bits) *Bits {
	b.mag.Add(&b.mag, &rhs.mag)
	b.width = maxWidth(b.width, rhs.width)
	b.trim()
	//
	return b
}

// Sub computes the receiver minus rhs, truncated to max(w_a, w_b) bits. When
// rhs's magnitude exceeds the receiver's, this wraps per two's-complement
// subtraction (boundary behavior B3).
func (b *Bits) Sub(rhs *Bits) *Bits {
	b.mag.Sub(&b.mag, &rhs.mag)
	b.width = maxWidth(b.width, rhs.width)
	b.trim()
	//
	return b
}

// Mul computes the receiver times rhs, truncated to max(w_a, w_b) bits.
func (b *Bits) Mul(rhs *Bits) *Bits {
	b.mag.Mul(&b.mag, &rhs.mag)
	b.width = maxWidth(b.width, rhs.width)
	b.trim()
	//
	return b
}

// Div computes truncated (toward zero) integer division of the receiver by
// rhs. Division by a zero-magnitude rhs does not model Verilog's 'x': the
// result is forced to magnitude 0 at the combined width, and a diagnostic is
// logged rather than raised as an error.
func (b *Bits) Div(rhs *Bits) *Bits {
	w := maxWidth(b.width, rhs.width)
	//
	if rhs.mag.Sign() == 0 {
		log.Warnf("bits: division by zero (width %d / width %d); forcing result to 0", b.width, rhs.width)
		b.mag.SetUint64(0)
		b.width = w
		//
		return b
	}
	//
	b.mag.Quo(&b.mag, &rhs.mag)
	b.width = w
	//
	return b
}

// Mod computes truncated (toward zero) integer modulo of the receiver by
// rhs. Division by a zero-magnitude rhs follows the same convention as Div.
func (b *Bits) Mod(rhs *Bits) *Bits {
	w := maxWidth(b.width, rhs.width)
	//
	if rhs.mag.Sign() == 0 {
		log.Warnf("bits: modulo by zero (width %d %% width %d); forcing result to 0", b.width, rhs.width)
		b.mag.SetUint64(0)
		b.width = w
		//
		return b
	}
	//
	b.mag.Rem(&b.mag, &rhs.mag)
	b.width = w
	//
	return b
}

// Pow raises the receiver's magnitude to the non-negative power rhs.ToInt(),
// truncated to the receiver's own width (Pow keeps w_a, unlike the other
// arithmetic operators).
func (b *Bits) Pow(rhs *Bits) *Bits {
	exp := new(big.Int).SetUint64(rhs.ToInt())
	b.mag.Exp(&b.mag, exp, nil)
	b.trim()
	//
	return b
}
