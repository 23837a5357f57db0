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
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a decimal integer argument, exiting on malformed input.
func parseInt(arg string) int64 {
	val, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Printf("malformed integer %q\n", arg)
		os.Exit(2)
	}

	return val
}

// Parse a comma-separated list of decimal integers, exiting on malformed
// input.
func parseIntList(arg string) []int64 {
	var vals []int64
	//
	for _, item := range strings.Split(arg, ",") {
		vals = append(vals, parseInt(strings.TrimSpace(item)))
	}
	//
	return vals
}

// Determine the width available for output, falling back to a conventional
// default when stdout is not a terminal.
func terminalWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
			return width
		}
	}
	//
	return 80
}

// Print a series rendering, folding it at term boundaries when it exceeds the
// available width.
func printFolded(prefix, rendering string) {
	var (
		width = terminalWidth()
		line  = prefix
	)
	//
	for i, part := range strings.Split(rendering, " + ") {
		if i != 0 {
			part = "+ " + part
		}
		//
		if len(line)+len(part)+1 > width && line != "" {
			fmt.Println(line)
			line = "    " + part
		} else if line == "" {
			line = part
		} else {
			line = line + " " + part
		}
	}
	//
	fmt.Println(line)
}
