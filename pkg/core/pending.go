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

import "github.com/bits-and-blooms/bitset"

// PendingSet tracks the VIds latched for commit by the most recent
// Evaluate, ready to be applied (and cleared) by Update. A real core embeds
// one of these per non-blocking assignment target; StubCore needs none,
// since it never latches anything.
type PendingSet struct {
	ids *bitset.BitSet
}

// NewPendingSet returns an empty PendingSet.
func NewPendingSet() *PendingSet {
	return &PendingSet{ids: bitset.New(0)}
}

// Insert marks id as pending.
func (p *PendingSet) Insert(id VId) {
	p.ids.Set(uint(id))
}

// Remove clears id's pending mark, if set.
func (p *PendingSet) Remove(id VId) {
	p.ids.Clear(uint(id))
}

// Contains reports whether id is currently pending.
func (p *PendingSet) Contains(id VId) bool {
	return p.ids.Test(uint(id))
}

// Count returns the number of pending ids.
func (p *PendingSet) Count() uint {
	return p.ids.Count()
}

// Clear discards every pending mark, as Update does once it has applied
// them.
func (p *PendingSet) Clear() {
	p.ids.ClearAll()
}

// Each calls f once for every pending id, in ascending order.
func (p *PendingSet) Each(f func(VId)) {
	for i, e := p.ids.NextSet(0); e; i, e = p.ids.NextSet(i + 1) {
		f(VId(i))
	}
}
