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

// Package core defines the compute-core contract: the abstract engine that
// owns a bag of BitVec-valued input slots and a private state, evaluates
// combinational logic, and reports pending updates and tasks back to a
// scheduler. StubCore is the only concrete implementation required by the
// contract itself; real cores are external collaborators.
package core

import "github.com/cascadehdl/bitcore/pkg/bits"

// VId names an input slot on a Core. It carries no meaning beyond identity:
// a scheduler and a Core agree on the mapping from VId to signal out of
// band.
type VId uint32

// State is an owned snapshot of a Core's internal registers. The stub
// variant's State is always empty; a real core's State carries whatever
// register file it was compiled with.
type State struct {
	slots map[VId]*bits.Bits
}

// NewState returns an empty State.
func NewState() *State {
	return &State{slots: make(map[VId]*bits.Bits)}
}

// Get returns the value stored at id and whether it was present.
func (s *State) Get(id VId) (*bits.Bits, bool) {
	v, ok := s.slots[id]
	return v, ok
}

// Set records the value for id, replacing any previous value.
func (s *State) Set(id VId, v *bits.Bits) {
	s.slots[id] = v
}

// Equals reports whether two States hold the same set of slots with
// Go-level-equal values.
func (s *State) Equals(rhs *State) bool {
	if len(s.slots) != len(rhs.slots) {
		return false
	}
	//
	for id, v := range s.slots {
		o, ok := rhs.slots[id]
		if !ok || !v.Equals(o) {
			return false
		}
	}
	//
	return true
}

// Input is an owned snapshot of a Core's input-slot values.
type Input struct {
	slots map[VId]*bits.Bits
}

// NewInput returns an empty Input.
func NewInput() *Input {
	return &Input{slots: make(map[VId]*bits.Bits)}
}

// Get returns the value stored at id and whether it was present.
func (i *Input) Get(id VId) (*bits.Bits, bool) {
	v, ok := i.slots[id]
	return v, ok
}

// Set records the value for id, replacing any previous value.
func (i *Input) Set(id VId, v *bits.Bits) {
	i.slots[id] = v
}

// Equals reports whether two Inputs hold the same set of slots with
// Go-level-equal values.
func (i *Input) Equals(rhs *Input) bool {
	if len(i.slots) != len(rhs.slots) {
		return false
	}
	//
	for id, v := range i.slots {
		o, ok := rhs.slots[id]
		if !ok || !v.Equals(o) {
			return false
		}
	}
	//
	return true
}

// Core is the compute-core contract (spec §4.2). Implementations are driven
// by a scheduler (out of scope here) on a single thread at a time: reads
// are applied in caller order, evaluate runs combinational logic to
// fixpoint, and update commits exactly the non-blocking assignments latched
// by the most recent evaluate.
type Core interface {
	// GetState returns a snapshot of internal registers as an owned object.
	GetState() *State
	// SetState restores from a snapshot. Implementations may ignore unknown
	// fields.
	SetState(s *State)
	// GetInput returns a snapshot of input-slot values.
	GetInput() *Input
	// SetInput replaces all input slots.
	SetInput(i *Input)
	// Read writes b into the input slot named id. Does not trigger
	// evaluation.
	Read(id VId, b *bits.Bits)
	// Evaluate runs combinational logic to fixpoint. May enqueue pending
	// updates and/or raise HadTasks.
	Evaluate()
	// HasUpdates reports whether Update would change observable state.
	HasUpdates() bool
	// Update commits pending non-blocking updates and clears HasUpdates.
	Update()
	// HadTasks reports whether the last Evaluate executed side-effecting
	// system tasks (e.g. $display).
	HadTasks() bool
	// IsStub identifies the degenerate variant.
	IsStub() bool
}
