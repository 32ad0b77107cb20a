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

	"github.com/cascadehdl/bitcore/pkg/bits"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// loadCmd represents the load command
var loadCmd = &cobra.Command{
	Use:   "load [flags] file",
	Short: "Deserialize a BitVec from Cascade's fixed binary layout.",
	Long:  `Read a file holding a Cascade-format BitVec encoding and report its width and magnitude.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		data, err := os.ReadFile(args[0])
		if err != nil {
			log.Errorf("load: %v", err)
			os.Exit(1)
		}
		//
		var b bits.Bits
		if err := b.UnmarshalBinary(data); err != nil {
			log.Errorf("load: %v", err)
			os.Exit(1)
		}
		//
		fmt.Println(&b)
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
