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

func Test_ReduceAnd_00(t *testing.T) {
	// L7: reduce_and(a) = (m(a) = 2^w - 1) ? 1 : 0.
	check_Int(t, New(4, 0xF).ReduceAnd(), 1)
	check_Int(t, New(4, 0xE).ReduceAnd(), 0)
}

func Test_ReduceNand_00(t *testing.T) {
	check_Int(t, New(4, 0xF).ReduceNand(), 0)
	check_Int(t, New(4, 0xE).ReduceNand(), 1)
}

func Test_ReduceOr_00(t *testing.T) {
	// L7: reduce_or(a) = (m(a) != 0) ? 1 : 0.
	check_Int(t, New(4, 0).ReduceOr(), 0)
	check_Int(t, New(4, 1).ReduceOr(), 1)
}

func Test_ReduceNor_00(t *testing.T) {
	check_Int(t, New(4, 0).ReduceNor(), 1)
	check_Int(t, New(4, 1).ReduceNor(), 0)
}

func Test_ReduceXor_00(t *testing.T) {
	// L7: reduce_xor(a) = popcount(m(a)) mod 2.
	check_Int(t, New(4, 0b0111).ReduceXor(), 1)
	check_Int(t, New(4, 0b0110).ReduceXor(), 0)
}

func Test_ReduceXnor_00(t *testing.T) {
	check_Int(t, New(4, 0b0111).ReduceXnor(), 0)
	check_Int(t, New(4, 0b0110).ReduceXnor(), 1)
}
