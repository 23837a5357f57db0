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
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is stamped in via ldflags when building with make; left empty
// otherwise.
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "tate",
	Short:   "A calculator for Tate algebra arithmetic.",
	Long:    "A calculator for precision-tracked series arithmetic over p-adic base rings.",
	Version: version(),
}

// version resolves what "tate --version" reports, covering both stamped
// builds and plain "go install".
func version() string {
	if Version != "" {
		return Version
	}
	//
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	//
	return "unknown"
}

// Execute runs the command tree.  Called once, from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
