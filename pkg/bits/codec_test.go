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
	"bytes"
	"testing"
)

func Test_MarshalBinary_00(t *testing.T) {
	// Concrete scenario 1's serialized form: 04 00 01 00 0A.
	b := New(4, 5).Not()
	//
	enc, err := b.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	want := []byte{0x04, 0x00, 0x01, 0x00, 0x0A}
	if !bytes.Equal(enc, want) {
		t.Errorf("unexpected encoding % x, want % x", enc, want)
	}
}

func Test_RoundTrip_00(t *testing.T) {
	// L5: deserialize(serialize(a)) == a for every valid a.
	a := New(37, 0x1FFFFFFFFF)
	//
	enc, err := a.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	var b Bits
	if err := b.UnmarshalBinary(enc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if !a.Equals(&b) {
		t.Errorf("round trip mismatch: %v vs %v", a, &b)
	}
}

func Test_RoundTrip_01(t *testing.T) {
	// Zero-magnitude values encode with L=0 and decode correctly.
	a := Zero(16)
	//
	enc, err := a.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if len(enc) != 4 {
		t.Errorf("expected 4-byte encoding for zero magnitude, got %d", len(enc))
	}
	//
	var b Bits
	if err := b.UnmarshalBinary(enc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if !a.Equals(&b) {
		t.Errorf("round trip mismatch: %v vs %v", a, &b)
	}
}

func Test_UnmarshalBinary_00(t *testing.T) {
	// DeserializationFailure: truncated stream. The receiver is left in the
	// defined empty state (w=1, m=0), not untouched.
	var b Bits
	if err := b.UnmarshalBinary([]byte{0x08, 0x00}); err != ErrTruncated {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	//
	check_Width(t, &b, 1)
	check_Int(t, &b, 0)
}

func Test_UnmarshalBinary_01(t *testing.T) {
	var b Bits
	if err := b.UnmarshalBinary([]byte{0x00, 0x00, 0x00, 0x00}); err != ErrInvalidWidth {
		t.Errorf("expected ErrInvalidWidth, got %v", err)
	}
	//
	check_Width(t, &b, 1)
	check_Int(t, &b, 0)
}

func Test_UnmarshalBinary_02(t *testing.T) {
	// L > 1024 is rejected.
	var b Bits
	enc := []byte{0x08, 0x00, 0x01, 0x04}
	if err := b.UnmarshalBinary(enc); err != ErrMagnitudeTooLarge {
		t.Errorf("expected ErrMagnitudeTooLarge, got %v", err)
	}
	//
	check_Width(t, &b, 1)
	check_Int(t, &b, 0)
}

func Test_UnmarshalBinary_03(t *testing.T) {
	// A previously-populated receiver is reset on failure, not left as-is.
	b := *New(32, 0xDEADBEEF)
	//
	if err := b.UnmarshalBinary([]byte{0x08, 0x00}); err != ErrTruncated {
		t.Errorf("expected ErrTruncated, got %v", err)
	}
	//
	check_Width(t, &b, 1)
	check_Int(t, &b, 0)
}

func Test_MarshalBinary_01(t *testing.T) {
	// Magnitudes exceeding 1024 bytes are rejected.
	big := New(8200, 0)
	big.mag.SetBit(&big.mag, 8199, 1)
	//
	if _, err := big.MarshalBinary(); err != ErrMagnitudeTooLarge {
		t.Errorf("expected ErrMagnitudeTooLarge, got %v", err)
	}
}
