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
	"math/bits"
)

// popcount returns the number of set bits in a non-negative big.Int's
// magnitude.
func popcount(m *big.Int) uint {
	var n uint
	//
	for _, by := range m.Bytes() {
		n += uint(bits.OnesCount8(by))
	}
	//
	return n
}

// ReduceAnd is true iff every bit of the receiver is set.
func (b *Bits) ReduceAnd() *Bits {
	return b.setBool(popcount(&b.mag) == uint(b.width))
}

// ReduceNand is the complement of ReduceAnd.
func (b *Bits) ReduceNand() *Bits {
	b.ReduceAnd()
	//
	return b.LogicalNot()
}

// ReduceOr is true iff any bit of the receiver is set.
func (b *Bits) ReduceOr() *Bits {
	return b.setBool(b.mag.Sign() != 0)
}

// ReduceNor is true iff no bit of the receiver is set.
func (b *Bits) ReduceNor() *Bits {
	return b.setBool(b.mag.Sign() == 0)
}

// ReduceXor is the parity of the receiver's magnitude.
func (b *Bits) ReduceXor() *Bits {
	return b.setBool(popcount(&b.mag)%2 == 1)
}

// ReduceXnor is the complement of the receiver's parity.
func (b *Bits) ReduceXnor() *Bits {
	return b.setBool(popcount(&b.mag)%2 == 0)
}
