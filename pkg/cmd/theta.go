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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/padiclabs/go-tate/pkg/theta"
)

// thetaCmd counts representations by a binary quadratic form.
var thetaCmd = &cobra.Command{
	Use:   "theta [a] [b] [c] [bound]",
	Short: "Count representations by the form a*x^2 + b*x*y + c*y^2.",
	Args:  cobra.ExactArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		counts, err := theta.Series(parseInt(args[0]), parseInt(args[1]), parseInt(args[2]), parseInt(args[3]))
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		for n, count := range counts {
			fmt.Printf("%d: %d\n", n, count)
		}
	},
}

func init() {
	rootCmd.AddCommand(thetaCmd)
}
