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

// Package theta counts lattice-point representations by positive-definite
// binary quadratic forms.  It shares no state with the series engine.
package theta

import (
	"fmt"
	"math/big"
)

// Series returns, for each 0 ≤ n ≤ bound, the number of integer pairs (x, y)
// with a·x² + b·x·y + c·y² = n.  The form must be positive definite.
func Series(a, b, c, bound int64) ([]uint64, error) {
	disc := 4*a*c - b*b
	//
	switch {
	case a <= 0 || disc <= 0:
		return nil, fmt.Errorf("form [%d, %d, %d] is not positive definite", a, b, c)
	case bound < 0:
		return nil, fmt.Errorf("negative bound %d", bound)
	}
	// Positive definiteness bounds the lattice points of the disc:
	// 4a·Q = (2ax+by)² + disc·y², hence y² ≤ 4a·Q/disc and symmetrically
	// x² ≤ 4c·Q/disc.
	var (
		counts = make([]uint64, bound+1)
		xmax   = isqrt(4 * c * bound / disc)
		ymax   = isqrt(4 * a * bound / disc)
	)
	//
	for y := -ymax; y <= ymax; y++ {
		for x := -xmax; x <= xmax; x++ {
			q := a*x*x + b*x*y + c*y*y
			//
			if q >= 0 && q <= bound {
				counts[q]++
			}
		}
	}
	//
	return counts, nil
}

// isqrt returns the integer square root of a non-negative value.
func isqrt(n int64) int64 {
	var root big.Int
	//
	root.Sqrt(big.NewInt(n))
	//
	return root.Int64()
}
