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
package theta

import (
	"slices"
	"testing"
)

func Test_Theta_SumOfSquares(t *testing.T) {
	// x^2 + y^2: OEIS A004018
	counts, err := Series(1, 0, 1, 10)
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := []uint64{1, 4, 4, 0, 4, 8, 0, 0, 4, 4, 8}
	//
	if !slices.Equal(counts, expected) {
		t.Errorf("got %v, wanted %v", counts, expected)
	}
}

func Test_Theta_Hexagonal(t *testing.T) {
	// x^2 + xy + y^2: OEIS A004016
	counts, err := Series(1, 1, 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	//
	expected := []uint64{1, 6, 0, 6, 6, 0, 0, 12}
	//
	if !slices.Equal(counts, expected) {
		t.Errorf("got %v, wanted %v", counts, expected)
	}
}

func Test_Theta_ZeroBound(t *testing.T) {
	counts, err := Series(2, 1, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	//
	if len(counts) != 1 || counts[0] != 1 {
		t.Errorf("got %v, wanted [1]", counts)
	}
}

func Test_Theta_Invalid(t *testing.T) {
	// not positive definite
	if _, err := Series(0, 0, 1, 5); err == nil {
		t.Error("expected an error for a degenerate form")
	}
	//
	if _, err := Series(1, 5, 1, 5); err == nil {
		t.Error("expected an error for an indefinite form")
	}
	//
	if _, err := Series(1, 0, 1, -1); err == nil {
		t.Error("expected an error for a negative bound")
	}
}
