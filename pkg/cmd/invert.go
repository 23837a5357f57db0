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

	"github.com/padiclabs/go-tate/pkg/ring/padic"
	"github.com/padiclabs/go-tate/pkg/tate"
)

// invertCmd inverts a univariate series over Z_p.
var invertCmd = &cobra.Command{
	Use:   "invert [p] [cap] [coeffs]",
	Short: "Invert the series with the given comma-separated coefficients over Z_p.",
	Long: "Invert c0 + c1*x + c2*x^2 + ... over the p-adic integers at the given " +
		"precision cap, reporting the inverse and the product check.",
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			p       = parseInt(args[0])
			cap     = parseInt(args[1])
			coeffs  = parseIntList(args[2])
			base    = padic.New(p, cap)
			algebra = tate.New[padic.Element](base, "x")
			series  = algebra.Zero()
		)
		//
		for i, c := range coeffs {
			monomial, err := algebra.Monomial(base.FromInt64(c), tate.NewExponent(uint(i)))
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			series = series.Add(monomial)
		}
		//
		inverse, err := series.InverseOfUnit()
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		printFolded("series:  ", series.String())
		printFolded("inverse: ", inverse.String())
		printFolded("check:   ", series.Mul(inverse).AddBigOh(cap).String())
	},
}

func init() {
	rootCmd.AddCommand(invertCmd)
}
