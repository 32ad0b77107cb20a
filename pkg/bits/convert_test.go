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

func Test_ToBool_00(t *testing.T) {
	if New(8, 0).ToBool() {
		t.Errorf("expected false for zero magnitude")
	}
	//
	if !New(8, 1).ToBool() {
		t.Errorf("expected true for non-zero magnitude")
	}
}

func Test_ToInt_00(t *testing.T) {
	defer expectPanic(t)
	New(128, 0).SetBit(100, true).ToInt()
}

func Test_ToInt_01(t *testing.T) {
	// Precondition is on width, not on whether the magnitude happens to fit:
	// a width > 64 value panics even with a small magnitude.
	defer expectPanic(t)
	New(128, 1).ToInt()
}

func Test_ToInt_02(t *testing.T) {
	// Width exactly 64 is within bounds.
	check_Int(t, New(64, 42), 42)
}

func Test_Resize_00(t *testing.T) {
	// Zero-extension on widen.
	a := New(4, 0xF).Resize(8)
	check_Width(t, a, 8)
	check_Int(t, a, 0xF)
}

func Test_Resize_01(t *testing.T) {
	// Truncation on narrow.
	a := New(8, 0xFF).Resize(4)
	check_Width(t, a, 4)
	check_Int(t, a, 0xF)
}

func Test_Resize_02(t *testing.T) {
	defer expectPanic(t)
	New(8, 0).Resize(0)
}

func Test_ResizeToBool_00(t *testing.T) {
	a := New(8, 42).ResizeToBool()
	check_Width(t, a, 1)
	check_Int(t, a, 1)
}
