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
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cascadehdl/bitcore/pkg/bits"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// dumpCmd represents the dump command
var dumpCmd = &cobra.Command{
	Use:   "dump [flags] width value",
	Short: "Serialize a BitVec to Cascade's fixed binary layout.",
	Long: `Construct a BitVec from a declared width and a textual value (parsed per
--base), then write its binary encoding to stdout as hex, or to the file
named by --out.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		width, err := strconv.ParseUint(args[0], 10, 16)
		if err != nil {
			log.Errorf("dump: invalid width %q: %v", args[0], err)
			os.Exit(1)
		}
		//
		radix := ParseRadix(GetString(cmd, "base"))
		reader := bufio.NewReader(strings.NewReader(args[1]))
		//
		val, err := bits.ReadText(reader, radix)
		if err != nil {
			log.Errorf("dump: %v", err)
			os.Exit(1)
		}
		//
		b := bits.New(uint16(width), val.ToInt())
		//
		enc, err := b.MarshalBinary()
		if err != nil {
			log.Errorf("dump: %v", err)
			os.Exit(1)
		}
		//
		out := GetString(cmd, "out")
		if out == "" {
			fmt.Println(hex.EncodeToString(enc))
			return
		}
		//
		if err := os.WriteFile(out, enc, 0644); err != nil {
			log.Errorf("dump: %v", err)
			os.Exit(1)
		}
	},
}

func init() {
	dumpCmd.Flags().String("out", "", "write the binary encoding to this file instead of stdout")
	rootCmd.AddCommand(dumpCmd)
}
