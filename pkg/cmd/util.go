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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// GetFlag returns an expected boolean flag, or exits if the flag does not
// exist (a programming error, not a user-facing one).
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString returns an expected string flag, or exits if the flag does not
// exist.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// ParseRadix maps one of the "base" flag's accepted names (bin, oct, dec,
// hex) to the corresponding numeric base. Exits with a usage error on any
// other value.
func ParseRadix(name string) int {
	switch name {
	case "bin":
		return 2
	case "oct":
		return 8
	case "dec":
		return 10
	case "hex":
		return 16
	default:
		fmt.Printf("unknown radix %q: expected one of bin, oct, dec, hex\n", name)
		os.Exit(2)
		//
		return 0
	}
}
