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

import "testing"

func Test_Not_00(t *testing.T) {
	// Concrete scenario 1: Bits(4, 5).bitwise_not() -> width 4, magnitude 10.
	b := New(4, 5).Not()
	check_Width(t, b, 4)
	check_Int(t, b, 10)
}

func Test_Not_01(t *testing.T) {
	// L1: NOT(NOT a) = a.
	a := New(13, 0x1234)
	orig := a.Clone()
	a.Not().Not()
	if !a.Equals(orig) {
		t.Errorf("double negation changed value: %v vs %v", a, orig)
	}
}

func Test_And_00(t *testing.T) {
	b := New(8, 0xF0).And(New(8, 0x3C))
	check_Int(t, b, 0x30)
}

func Test_Or_00(t *testing.T) {
	b := New(8, 0xF0).Or(New(8, 0x0F))
	check_Int(t, b, 0xFF)
}

func Test_Xor_00(t *testing.T) {
	b := New(8, 0xFF).Xor(New(8, 0x0F))
	check_Int(t, b, 0xF0)
}

func Test_Xnor_00(t *testing.T) {
	b := New(4, 0b1010).Xnor(New(4, 0b1010))
	check_Int(t, b, 0xF)
}

func Test_ShiftLeftLogical_00(t *testing.T) {
	b := New(8, 0x0F).ShiftLeftLogical(New(8, 4))
	check_Width(t, b, 8)
	check_Int(t, b, 0xF0)
}

func Test_ShiftLeftLogical_01(t *testing.T) {
	// Bits shifted past w-1 are dropped.
	b := New(8, 0xFF).ShiftLeftLogical(New(8, 4))
	check_Int(t, b, 0xF0)
}

func Test_ShiftRightLogical_00(t *testing.T) {
	b := New(8, 0x80).ShiftRightLogical(New(8, 4))
	check_Int(t, b, 0x08)
}

func Test_ShiftRightArith_00(t *testing.T) {
	// Concrete scenario 3.
	b := New(8, 0x80).ShiftRightArith(New(8, 3))
	check_Width(t, b, 8)
	check_Int(t, b, 0xF0)
}

func Test_ShiftRightArith_01(t *testing.T) {
	// B2: shift by w(a) with a positive value yields all-zero.
	b := New(8, 0x7F).ShiftRightArith(New(8, 8))
	check_Int(t, b, 0)
}

func Test_ShiftRightArith_02(t *testing.T) {
	// B2: shift by w(a) with sign bit set yields all-one.
	b := New(8, 0x80).ShiftRightArith(New(8, 8))
	check_Int(t, b, 0xFF)
}

func Test_ShiftRightArith_03(t *testing.T) {
	// Unset sign bit: zero-extends like the logical variant.
	b := New(8, 0x40).ShiftRightArith(New(8, 2))
	check_Int(t, b, 0x10)
}

func Test_ShiftRightLogical_01(t *testing.T) {
	// B2: shift by w(a) yields 0 (logical).
	b := New(8, 0xFF).ShiftRightLogical(New(8, 8))
	check_Int(t, b, 0)
}
