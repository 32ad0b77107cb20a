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

import "encoding/binary"

// maxMagnitudeBytes is the codec's cap on the encoded magnitude's byte
// length (spec.md §4.3's bound on L).
const maxMagnitudeBytes = 1024

// MarshalBinary encodes the receiver in Cascade's fixed on-disk/wire layout:
// a little-endian u16 width, a little-endian u16 magnitude byte length L,
// then L big-endian (MSB-first) magnitude bytes. Returns ErrMagnitudeTooLarge
// if the magnitude's minimal big-endian encoding exceeds 1024 bytes.
func (b *Bits) MarshalBinary() ([]byte, error) {
	mag := b.mag.Bytes()
	if len(mag) > maxMagnitudeBytes {
		return nil, ErrMagnitudeTooLarge
	}
	//
	out := make([]byte, 4+len(mag))
	binary.LittleEndian.PutUint16(out[0:2], b.width)
	binary.LittleEndian.PutUint16(out[2:4], uint16(len(mag)))
	copy(out[4:], mag)
	//
	return out, nil
}

// UnmarshalBinary decodes a Cascade-format encoding produced by
// MarshalBinary, replacing the receiver's contents. Returns ErrTruncated if
// data does not hold a complete encoding, ErrInvalidWidth if the decoded
// width is zero, and ErrMagnitudeTooLarge if the decoded L exceeds 1024; in
// every error case the receiver is left in the defined empty state (w=1,
// m=0) rather than untouched, per spec.md §7's DeserializationFailure.
func (b *Bits) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		b.reset()
		return ErrTruncated
	}
	//
	width := binary.LittleEndian.Uint16(data[0:2])
	if width == 0 {
		b.reset()
		return ErrInvalidWidth
	}
	//
	length := binary.LittleEndian.Uint16(data[2:4])
	if length > maxMagnitudeBytes {
		b.reset()
		return ErrMagnitudeTooLarge
	}
	//
	if len(data) < 4+int(length) {
		b.reset()
		return ErrTruncated
	}
	//
	b.width = width
	b.mag.SetBytes(data[4 : 4+int(length)])
	b.trim()
	//
	return nil
}

// reset restores the receiver to the defined empty BitVec (w=1, m=0).
func (b *Bits) reset() {
	b.width = 1
	b.mag.SetUint64(0)
}
