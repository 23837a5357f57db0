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
package tate

import (
	"errors"
	"testing"

	"github.com/padiclabs/go-tate/pkg/ring/padic"
	"github.com/padiclabs/go-tate/pkg/util/math"
)

func Test_Division_Exact(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 2, 0) // x^2
	g := mono(a, base, 1, 1, 0) // x
	//
	q, rem, err := f.QuoRem(g)
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, q[0], mono(a, base, 1, 1, 0))
	//
	if !rem.IsZero() {
		t.Errorf("expected zero remainder, got %s", rem)
	}
}

func Test_Division_Remainder(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	// x^2y + 2x + y divided by x leaves y behind
	f := mono(a, base, 1, 2, 1).Add(mono(a, base, 2, 1, 0)).Add(mono(a, base, 1, 0, 1))
	g := mono(a, base, 1, 1, 0)
	//
	q, rem, err := f.QuoRem(g)
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, q[0], mono(a, base, 1, 1, 1).Add(a.FromInt64(2)))
	checkEqual(t, rem, mono(a, base, 1, 0, 1))
	checkDivision(t, f, []*Element[padic.Element]{g}, q, rem)
}

func Test_Division_MultipleDivisors(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 2, 1).Add(mono(a, base, 1, 1, 2)).Add(mono(a, base, 1, 0, 2))
	divisors := []*Element[padic.Element]{
		mono(a, base, 1, 1, 1).Sub(a.One()), // xy - 1
		mono(a, base, 1, 0, 2).Sub(a.One()), // y^2 - 1
	}
	//
	q, rem, err := f.QuoRem(divisors...)
	if err != nil {
		t.Fatal(err)
	}
	//
	checkDivision(t, f, divisors, q, rem)
}

func Test_Division_Views(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 2, 1).Add(mono(a, base, 1, 0, 1))
	g := mono(a, base, 1, 1, 0)
	//
	q, err := f.Quo(g)
	if err != nil {
		t.Fatal(err)
	}
	//
	rem, err := f.Mod(g)
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, q, mono(a, base, 1, 1, 1))
	checkEqual(t, rem, mono(a, base, 1, 0, 1))
	// Reduce is the remainder modulo the whole generating set
	reduced, err := f.Reduce([]*Element[padic.Element]{g, mono(a, base, 1, 0, 1)})
	if err != nil {
		t.Fatal(err)
	}
	//
	if !reduced.IsZero() {
		t.Errorf("expected full reduction, got %s", reduced)
	}
}

func Test_Division_Truncated(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	// the quotient cannot be more precise than the dividend
	f := mono(a, base, 1, 2, 0).AddBigOh(3)
	//
	q, _, err := f.QuoRem(mono(a, base, 1, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	//
	checkPrec(t, q[0], math.NewExtInt(3))
}

func Test_Division_Errors(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 2, 0)
	//
	if _, _, err := f.QuoRem(a.Zero()); !errors.Is(err, ErrZeroOperand) {
		t.Errorf("expected ErrZeroOperand, got %v", err)
	}
	//
	other := New[padic.Element](base, "x", "z")
	//
	if _, _, err := f.QuoRem(other.One()); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch, got %v", err)
	}
}

// =========================================================================================

// checkDivision verifies the two contractual properties of a division: the
// identity x = Σ quotient[i]*divisor[i] + remainder, and that no term of the
// remainder is divisible by any divisor's leading term.
func checkDivision(t *testing.T, x *Element[padic.Element], divisors, quotients []*Element[padic.Element],
	rem *Element[padic.Element]) {
	t.Helper()
	//
	sum := rem
	//
	for i, q := range quotients {
		sum = sum.Add(q.Mul(divisors[i]))
	}
	//
	checkEqual(t, sum, x)
	//
	for _, g := range divisors {
		glt, _ := g.LeadingTerm()
		//
		for _, rt := range rem.Terms() {
			if rt.IsDivisibleBy(glt, false) {
				t.Errorf("remainder term %s is divisible by %s", rt, glt)
			}
		}
	}
}
