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

// LogicalAnd computes to_bool(a) && to_bool(b), collapsing the receiver to
// width 1.
func (b *Bits) LogicalAnd(rhs *Bits) *Bits {
	return b.setBool(b.ToBool() && rhs.ToBool())
}

// LogicalOr computes to_bool(a) || to_bool(b), collapsing the receiver to
// width 1.
func (b *Bits) LogicalOr(rhs *Bits) *Bits {
	return b.setBool(b.ToBool() || rhs.ToBool())
}

// LogicalNot computes !to_bool(a), collapsing the receiver to width 1.
func (b *Bits) LogicalNot() *Bits {
	return b.setBool(!b.ToBool())
}

// Equal performs an unsigned magnitude comparison, ignoring width, and
// collapses the receiver to width 1. This is Verilog '==', not Go's '=='
// (use Equals for that).
func (b *Bits) Equal(rhs *Bits) *Bits {
	return b.setBool(b.mag.Cmp(&rhs.mag) == 0)
}

// NotEqual is the complement of Equal.
func (b *Bits) NotEqual(rhs *Bits) *Bits {
	return b.setBool(b.mag.Cmp(&rhs.mag) != 0)
}

// LessThan performs an unsigned magnitude comparison.
func (b *Bits) LessThan(rhs *Bits) *Bits {
	return b.setBool(b.mag.Cmp(&rhs.mag) < 0)
}

// LessOrEqual performs an unsigned magnitude comparison.
func (b *Bits) LessOrEqual(rhs *Bits) *Bits {
	return b.setBool(b.mag.Cmp(&rhs.mag) <= 0)
}

// GreaterThan performs an unsigned magnitude comparison.
func (b *Bits) GreaterThan(rhs *Bits) *Bits {
	return b.setBool(b.mag.Cmp(&rhs.mag) > 0)
}

// GreaterOrEqual performs an unsigned magnitude comparison.
func (b *Bits) GreaterOrEqual(rhs *Bits) *Bits {
	return b.setBool(b.mag.Cmp(&rhs.mag) >= 0)
}
