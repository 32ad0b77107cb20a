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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cascadehdl/bitcore/pkg/bits"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [flags] token",
	Short: "Parse a whitespace-delimited token as a BitVec.",
	Long: `Parse a whitespace-delimited token as an unsigned integer in the radix
given by --base, and report the resulting BitVec's width and magnitude.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		radix := ParseRadix(GetString(cmd, "base"))
		reader := bufio.NewReader(strings.NewReader(args[0]))
		//
		b, err := bits.ReadText(reader, radix)
		if err != nil {
			log.Errorf("parse: %v", err)
			os.Exit(1)
		}
		//
		fmt.Println(b)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
