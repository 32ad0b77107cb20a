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
package core

import "testing"

func Test_PendingSet_00(t *testing.T) {
	p := NewPendingSet()
	//
	p.Insert(5)
	p.Insert(10)
	p.Insert(10)
	//
	if p.Count() != 2 {
		t.Errorf("unexpected count %d", p.Count())
	}
	//
	if !p.Contains(5) || !p.Contains(10) {
		t.Errorf("expected both inserted ids to be present")
	}
	//
	if p.Contains(6) {
		t.Errorf("unexpected id 6 present")
	}
	//
	p.Remove(5)
	//
	if p.Contains(5) {
		t.Errorf("expected id 5 to be removed")
	}
	//
	if p.Count() != 1 {
		t.Errorf("unexpected count after removal %d", p.Count())
	}
}

func Test_PendingSet_01(t *testing.T) {
	p := NewPendingSet()
	p.Insert(1)
	p.Insert(2)
	p.Insert(100)
	//
	var seen []VId
	p.Each(func(id VId) {
		seen = append(seen, id)
	})
	//
	if len(seen) != 3 {
		t.Errorf("unexpected number of ids visited: %d", len(seen))
	}
	//
	p.Clear()
	//
	if p.Count() != 0 {
		t.Errorf("expected empty set after Clear")
	}
}
