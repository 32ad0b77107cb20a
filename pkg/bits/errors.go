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
	"errors"
	"fmt"
)

// PreconditionError is the panic payload raised for a programmer error: an
// out-of-range index, a width-0 construction, or a to-int conversion on a
// value wider than 64 bits. These are not recoverable in the ordinary sense
// — the caller violated a documented precondition — but a typed payload
// lets a recovering caller (e.g. a fuzzer harness) distinguish it from other
// panics.
type PreconditionError struct {
	// Op names the operation that detected the violation.
	Op string
	// Msg describes what was violated.
	Msg string
}

// Error implements the error interface.
func (e PreconditionError) Error() string {
	return fmt.Sprintf("bits: precondition violated in %s: %s", e.Op, e.Msg)
}

// fail panics with a PreconditionError identifying op and msg.
func fail(op, msg string) {
	panic(PreconditionError{Op: op, Msg: msg})
}

// ErrTruncated is returned by UnmarshalBinary when the input stream ends
// before a complete, well-formed encoding has been read.
var ErrTruncated = errors.New("bits: truncated bitvec stream")

// ErrMagnitudeTooLarge is returned by MarshalBinary and UnmarshalBinary when
// a magnitude's byte length exceeds the codec's 1024-byte cap.
var ErrMagnitudeTooLarge = errors.New("bits: magnitude byte length exceeds 1024-byte codec cap")

// ErrInvalidWidth is returned by UnmarshalBinary when the encoded width
// field is zero, which can never result from a valid encoding.
var ErrInvalidWidth = errors.New("bits: decoded width is zero")
