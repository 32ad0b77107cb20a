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

import "github.com/cascadehdl/bitcore/pkg/bits"

// StubCore is the degenerate Core variant: it holds no state, consumes
// inputs without effect, and never signals updates or tasks. It exists so a
// scheduler can compose uniformly even before a real core is compiled.
type StubCore struct{}

// NewStubCore constructs a StubCore. There is no interface collaborator to
// bind, since a stub never reports outputs or tasks.
func NewStubCore() *StubCore {
	return &StubCore{}
}

// GetState always returns a fresh, empty State.
func (c *StubCore) GetState() *State {
	return NewState()
}

// SetState does nothing.
func (c *StubCore) SetState(s *State) {
}

// GetInput always returns a fresh, empty Input.
func (c *StubCore) GetInput() *Input {
	return NewInput()
}

// SetInput does nothing.
func (c *StubCore) SetInput(i *Input) {
}

// Read does nothing.
func (c *StubCore) Read(id VId, b *bits.Bits) {
}

// Evaluate does nothing.
func (c *StubCore) Evaluate() {
}

// HasUpdates always reports false.
func (c *StubCore) HasUpdates() bool {
	return false
}

// Update does nothing.
func (c *StubCore) Update() {
}

// HadTasks always reports false.
func (c *StubCore) HadTasks() bool {
	return false
}

// IsStub always reports true.
func (c *StubCore) IsStub() bool {
	return true
}
