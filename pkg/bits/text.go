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
	"bufio"
	"io"
	"math/big"
	"strings"
)

// ReadText consumes one whitespace-delimited token from r and parses it as
// an unsigned integer in base (2, 8, 10 or 16). No sign or prefix is
// recognised. On parse failure the returned Bits has magnitude 0 and width
// 1 (the ParseFailure edge case); otherwise the width is set to the number
// of significant binary digits of the parsed magnitude, minimum 1 — the
// text form never preserves a caller-intended width.
func ReadText(r *bufio.Reader, base int) (*Bits, error) {
	tok, err := scanToken(r)
	if err != nil {
		return nil, err
	}
	//
	if strings.HasPrefix(tok, "+") || strings.HasPrefix(tok, "-") {
		return New(1, 0), nil
	}
	//
	var m big.Int
	//
	if _, ok := m.SetString(tok, base); !ok {
		return New(1, 0), nil
	}
	//
	width := m.BitLen()
	if width == 0 {
		width = 1
	}
	//
	b := &Bits{width: uint16(width)}
	b.mag.Set(&m)
	//
	return b, nil
}

// scanToken reads and discards leading whitespace, then returns the
// contiguous run of non-whitespace runes that follows.
func scanToken(r *bufio.Reader) (string, error) {
	var buf strings.Builder
	//
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			if buf.Len() > 0 {
				return buf.String(), nil
			}
			//
			return "", err
		}
		//
		if isSpace(c) {
			if buf.Len() > 0 {
				return buf.String(), nil
			}
			//
			continue
		}
		//
		buf.WriteRune(c)
	}
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// WriteText emits the receiver's magnitude in the requested base (2, 8, 10
// or 16), with no sign and no prefix.
func (b *Bits) WriteText(w io.Writer, base int) error {
	_, err := io.WriteString(w, b.mag.Text(base))
	return err
}
