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
	"strconv"
	"strings"

	"github.com/cascadehdl/bitcore/pkg/bits"
	"github.com/cascadehdl/bitcore/pkg/core"
	"github.com/cascadehdl/bitcore/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval [flags] vid value",
	Short: "Drive a compute core through a single read/evaluate/update cycle.",
	Long: `Read a BitVec value into the input slot named vid, run Evaluate, and report
the resulting HasUpdates/HadTasks/IsStub flags. Without a real core wired in,
this always runs against StubCore.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		stats := util.NewPerfStats()
		defer stats.Log("eval")
		//
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			log.Errorf("eval: invalid vid %q: %v", args[0], err)
			os.Exit(1)
		}
		//
		radix := ParseRadix(GetString(cmd, "base"))
		reader := bufio.NewReader(strings.NewReader(args[1]))
		//
		val, err := bits.ReadText(reader, radix)
		if err != nil {
			log.Errorf("eval: %v", err)
			os.Exit(1)
		}
		//
		c := core.NewStubCore()
		c.Read(core.VId(id), val)
		c.Evaluate()
		//
		fmt.Printf("has_updates=%v had_tasks=%v is_stub=%v\n", c.HasUpdates(), c.HadTasks(), c.IsStub())
		//
		if c.HasUpdates() {
			c.Update()
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
