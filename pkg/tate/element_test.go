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

func Test_Element_Construct(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	//
	checkPrec(t, a.Zero(), math.PosInfinity)
	checkPrec(t, a.One(), math.NewExtInt(10))
	checkElementVal(t, a.Zero(), 10)
	checkElementVal(t, a.FromInt64(4), 2)
	// terms sharing an exponent are summed
	x, err := a.NewElement([]Term[padic.Element]{
		mkTerm(a, base, 1, 1, 0),
		mkTerm(a, base, 3, 1, 0),
	}, math.PosInfinity)
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, x, mono(a, base, 4, 1, 0))
	// ... and cancellations are dropped altogether
	x, err = a.NewElement([]Term[padic.Element]{
		mkTerm(a, base, 1, 1, 0),
		mkTerm(a, base, -1, 1, 0),
	}, math.PosInfinity)
	if err != nil {
		t.Fatal(err)
	}
	//
	if !x.IsZero() {
		t.Errorf("expected zero, got %s", x)
	}
	// mismatched exponent length is rejected
	if _, err := a.Monomial(base.FromInt64(1), NewExponent(1, 2, 3)); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch, got %v", err)
	}
}

func Test_Element_LeadingTerm(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	// x and x^3 share valuation 0; degrevlex puts x^3 on top
	f := mono(a, base, 1, 1, 0).Add(mono(a, base, 2, 2, 0)).Add(mono(a, base, 1, 3, 0))
	//
	lt, ok := f.LeadingTerm()
	if !ok {
		t.Fatal("expected a leading term")
	}
	//
	if !lt.Exponent().Equals(NewExponent(3, 0)) {
		t.Errorf("expected leading exponent (3,0), got %s", lt.Exponent())
	}
	//
	checkElementVal(t, f, 0)
	//
	if _, ok := a.Zero().LeadingTerm(); ok {
		t.Error("zero should have no leading term")
	}
}

func Test_Element_AddSub(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 1, 0).Add(mono(a, base, 2, 0, 2))
	g := a.FromInt64(3).Add(mono(a, base, 1, 0, 1))
	//
	checkEqual(t, f.Add(g).Sub(g), f)
	checkEqual(t, f.Sub(f), a.Zero().AddBigOh(10))
	checkEqual(t, f.Add(a.Zero()), f)
	// valuation of a sum dominates the min of the operand valuations
	checkElementVal(t, mono(a, base, 2, 1, 0).Add(mono(a, base, 1, 1, 0)), 0)
	checkElementVal(t, mono(a, base, 1, 1, 0).Add(mono(a, base, -1, 1, 0).Add(mono(a, base, 2, 0, 1))), 1)
}

func Test_Element_Mul(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 1, 0).Add(mono(a, base, 2, 2, 0))
	g := a.FromTerm(termOf(a, base.UniformizerPow(3), 1, 0))
	// prec(f*g) = min(prec(f)+val(g), prec(g)+val(f)) = min(10+3, 13+0)
	checkPrec(t, g, math.NewExtInt(13))
	checkPrec(t, f.Mul(g), math.NewExtInt(13))
	checkEqual(t, f.Mul(g), g.Mul(f))
	//
	if c, ok := f.Mul(g).Coefficient(NewExponent(2, 0)); !ok || !c.Equals(base.FromInt64(8)) {
		t.Errorf("expected coefficient 8 at x^2, got %s", c)
	}
	//
	if c, ok := f.Mul(g).Coefficient(NewExponent(3, 0)); !ok || !c.Equals(base.FromInt64(16)) {
		t.Errorf("expected coefficient 16 at x^3, got %s", c)
	}
	//
	if !f.Mul(a.Zero()).IsZero() {
		t.Error("product with zero should be zero")
	}
}

func Test_Element_BigOh(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := a.One().Add(mono(a, base, 2, 1, 0)).Add(mono(a, base, 8, 0, 1))
	// 8y has valuation 3 and is discarded at precision 3
	cut := f.AddBigOh(3)
	checkPrec(t, cut, math.NewExtInt(3))
	checkEqual(t, cut, a.One().Add(mono(a, base, 2, 1, 0)).AddBigOh(3))
	// truncation is idempotent
	checkEqual(t, cut.AddBigOh(3), cut)
	// surviving coefficients carry the truncated precision
	if c, ok := cut.Coefficient(NewExponent(0, 0)); !ok || c.Precision().CmpInt64(3) != 0 {
		t.Errorf("expected coefficient precision 3, got %s", c.Precision())
	}
}

func Test_Element_IsZero(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 8, 1, 0)
	//
	if f.IsZero() {
		t.Error("8x is not structurally zero")
	}
	//
	if !f.IsZero(3) {
		t.Error("8x vanishes at precision 3")
	}
	//
	if f.IsZero(4) {
		t.Error("8x does not vanish at precision 4")
	}
	//
	if !a.Zero().IsZero() || !a.Zero().IsZero(10) {
		t.Error("zero should vanish at any precision")
	}
}

func Test_Element_Shift(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	// over Z_2 the x coefficient floors away: (x + 2) >> 1 = 1
	f := mono(a, base, 1, 1, 0).Add(a.FromInt64(2))
	down := f.ShiftUniformizer(-1)
	//
	checkPrec(t, down, math.NewExtInt(9))
	checkEqual(t, down, a.One().AddBigOh(9))
	// over Q_2 shifting is exact in both directions
	qbase := padic.NewField(2, 10)
	qa := New[padic.Element](qbase, "x", "y")
	g, err := qa.Monomial(qbase.FromInt64(3), NewExponent(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, g.ShiftUniformizer(-2).ShiftUniformizer(2), g)
}

func Test_Element_Monic(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := a.FromInt64(2).Add(mono(a, base, 4, 1, 0))
	//
	monic, err := f.Monic()
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, monic, a.One().Add(mono(a, base, 2, 1, 0)).AddBigOh(9))
	//
	if _, err := a.Zero().Monic(); !errors.Is(err, ErrZeroOperand) {
		t.Errorf("expected ErrZeroOperand, got %v", err)
	}
}

func Test_Element_Restriction(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 1, 0).Add(a.FromInt64(2))
	//
	restricted, err := f.Restriction([]int64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	// on the larger polydisc the x term acquires valuation -1 ...
	checkElementVal(t, restricted, -1)
	// ... and the precision bound tightens with it
	checkPrec(t, restricted, math.NewExtInt(9))
	//
	if _, err := f.Restriction([]int64{-1, 0}); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch, got %v", err)
	}
}

func Test_Element_Residue(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := a.One().Add(mono(a, base, 2, 1, 0)).Add(mono(a, base, 4, 2, 0))
	// modulo 2 only the constant survives
	res, err := f.Residue(1)
	if err != nil {
		t.Fatal(err)
	}
	//
	checkEqual(t, res, a.One().AddBigOh(1))
	//
	if _, err := f.Residue(0); !errors.Is(err, ErrResidueUnsupported) {
		t.Errorf("expected ErrResidueUnsupported, got %v", err)
	}
	// residues are undefined off the unit polydisc
	b := NewWith[padic.Element](base, []string{"x", "y"}, []int64{1, 0}, 10, Degrevlex)
	//
	if _, err := b.One().Residue(1); !errors.Is(err, ErrResidueUnsupported) {
		t.Errorf("expected ErrResidueUnsupported, got %v", err)
	}
}

func Test_Element_Degree(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	// 8x^3 sits above the valuation and does not count
	f := a.FromInt64(3).Add(mono(a, base, 1, 1, 1)).Add(mono(a, base, 8, 3, 0))
	//
	deg, err := f.Degree()
	if err != nil {
		t.Fatal(err)
	}
	//
	if deg != 2 {
		t.Errorf("expected degree 2, got %d", deg)
	}
	//
	degrees, err := f.Degrees()
	if err != nil {
		t.Fatal(err)
	}
	//
	if len(degrees) != 2 || degrees[0] != 1 || degrees[1] != 1 {
		t.Errorf("expected degrees [1 1], got %v", degrees)
	}
	//
	deg, err = a.Zero().Degree()
	if err != nil || deg != -1 {
		t.Errorf("expected degree -1 for zero, got %d (%v)", deg, err)
	}
}

func Test_Element_FromElement(t *testing.T) {
	base, a := newTestAlgebra("x", "y")
	f := mono(a, base, 1, 1, 0).Add(a.FromInt64(2))
	// importing into an incompatible variable set fails
	b := New[padic.Element](base, "x", "z")
	//
	if _, err := b.FromElement(f); !errors.Is(err, ErrDomainMismatch) {
		t.Errorf("expected ErrDomainMismatch, got %v", err)
	}
	// importing into the restricted algebra succeeds
	c := NewWith[padic.Element](base, []string{"x", "y"}, []int64{1, 1}, 10, Degrevlex)
	//
	if _, err := c.FromElement(f); err != nil {
		t.Fatal(err)
	}
}

// =========================================================================================

// newTestAlgebra constructs a two-adic Tate algebra over the unit polydisc at
// precision cap 10.
func newTestAlgebra(vars ...string) (*padic.Ring, *Algebra[padic.Element]) {
	base := padic.New(2, 10)
	//
	return base, New[padic.Element](base, vars...)
}

// mkTerm builds the term coeff * x^exponent, panicking on malformed input.
func mkTerm(a *Algebra[padic.Element], base *padic.Ring, coeff int64, exponent ...uint) Term[padic.Element] {
	return termOf(a, base.FromInt64(coeff), exponent...)
}

func termOf(a *Algebra[padic.Element], coeff padic.Element, exponent ...uint) Term[padic.Element] {
	t, err := a.NewTerm(coeff, NewExponent(exponent...))
	//
	if err != nil {
		panic(err)
	}
	//
	return t
}

// mono builds the single-monomial element coeff * x^exponent.
func mono(a *Algebra[padic.Element], base *padic.Ring, coeff int64, exponent ...uint) *Element[padic.Element] {
	return a.FromTerm(mkTerm(a, base, coeff, exponent...))
}

func checkEqual(t *testing.T, got, want *Element[padic.Element]) {
	t.Helper()
	//
	if !got.Equal(want) {
		t.Errorf("got %s (prec %s), wanted %s (prec %s)", got, got.Precision(), want, want.Precision())
	}
}

func checkPrec(t *testing.T, x *Element[padic.Element], prec math.ExtInt) {
	t.Helper()
	//
	if x.Precision().Cmp(prec) != 0 {
		t.Errorf("%s: expected precision %s, got %s", x, prec, x.Precision())
	}
}

func checkElementVal(t *testing.T, x *Element[padic.Element], val int64) {
	t.Helper()
	//
	if x.Valuation() != val {
		t.Errorf("%s: expected valuation %d, got %d", x, val, x.Valuation())
	}
}
