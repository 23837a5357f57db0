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
	"fmt"
	"slices"
	"strings"

	"github.com/padiclabs/go-tate/pkg/ring"
	"github.com/padiclabs/go-tate/pkg/util/math"
)

// Element is a finite sum of terms together with an absolute precision: an
// upper bound on the valuation of whatever has been omitted or is unknown.
// The stored mapping is kept reduced (no zero coefficients).  Elements are
// immutable after construction; the only mutable field is the write-once
// cache of terms sorted in descending term order.
type Element[E ring.Element[E]] struct {
	algebra *Algebra[E]
	coeffs  map[string]Term[E]
	prec    math.ExtInt
	// sorted is the lazily computed term cache.  Recomputing it yields an
	// identical slice, so racing writers are harmless.
	sorted []Term[E]
}

// newElement assembles a reduced element from the given terms.  Terms sharing
// an exponent are summed, zero coefficients are dropped, and the stated
// precision is the given bound further tightened by the precision the stored
// coefficients actually carry.
func (a *Algebra[E]) newElement(terms []Term[E], bound math.ExtInt) *Element[E] {
	var (
		coeffs = make(map[string]Term[E], len(terms))
		prec   = bound
	)
	//
	for _, t := range terms {
		w := a.radiiWeight(t.exponent)
		prec = prec.Min(t.coeff.Precision().AddInt64(-w))
		//
		key := t.exponent.Key()
		//
		if prev, ok := coeffs[key]; ok {
			t = Term[E]{a, prev.coeff.Add(t.coeff), prev.exponent}
		}
		//
		if t.coeff.IsZero() {
			delete(coeffs, key)
		} else {
			coeffs[key] = Term[E]{a, t.coeff, t.exponent}
		}
	}
	//
	return &Element[E]{a, coeffs, prec, nil}
}

// Zero returns the zero element of this algebra.
func (a *Algebra[E]) Zero() *Element[E] {
	return a.newElement(nil, math.PosInfinity)
}

// One returns the unit element of this algebra.
func (a *Algebra[E]) One() *Element[E] {
	return a.FromScalar(a.base.One())
}

// FromInt64 constructs the constant series with the given integer value.
func (a *Algebra[E]) FromInt64(val int64) *Element[E] {
	return a.FromScalar(a.base.FromInt64(val))
}

// FromScalar constructs the constant series with the given base-ring value.
func (a *Algebra[E]) FromScalar(val E) *Element[E] {
	t, err := a.NewTerm(val, make(Exponent, a.NumVariables()))
	if err != nil {
		panic(err)
	}
	//
	return a.newElement([]Term[E]{t}, math.PosInfinity)
}

// FromTerm constructs the single-term series carrying the given term.
func (a *Algebra[E]) FromTerm(t Term[E]) *Element[E] {
	if !a.Compatible(t.algebra) {
		panic(ErrDomainMismatch)
	}
	//
	return a.newElement([]Term[E]{t}, math.PosInfinity)
}

// Monomial constructs the single-monomial series coeff * x^exponent.
func (a *Algebra[E]) Monomial(coeff E, exponent Exponent) (*Element[E], error) {
	t, err := a.NewTerm(coeff, exponent)
	if err != nil {
		return nil, err
	}
	//
	return a.FromTerm(t), nil
}

// NewElement constructs an element from the given terms at the given absolute
// precision, failing when any term belongs to an incompatible algebra.
func (a *Algebra[E]) NewElement(terms []Term[E], prec math.ExtInt) (*Element[E], error) {
	for _, t := range terms {
		if !a.Compatible(t.algebra) {
			return nil, fmt.Errorf("%w: term %s belongs to a different algebra", ErrDomainMismatch, t)
		}
	}
	//
	return a.newElement(terms, prec), nil
}

// FromElement imports an element of another algebra over the same base ring.
// Variable names must coincide and every log-radius of this algebra must
// dominate the source's (scaled by the ramification ratio): restricting to a
// smaller convergence domain is always legal, extrapolating to a larger one
// is not.
func (a *Algebra[E]) FromElement(x *Element[E]) (*Element[E], error) {
	src := x.algebra
	//
	switch {
	case !slices.Equal(a.vars, src.vars):
		return nil, fmt.Errorf("%w: variables %v vs %v", ErrDomainMismatch, a.vars, src.vars)
	case !a.base.Equals(src.base):
		return nil, fmt.Errorf("%w: different base rings", ErrDomainMismatch)
	}
	// Ramification ratio is 1 whenever the base rings coincide
	for i := range a.logRadii {
		if a.logRadii[i] < src.logRadii[i] {
			return nil, fmt.Errorf("%w: log-radius of %q would enlarge the domain (%d < %d)",
				ErrDomainMismatch, a.vars[i], a.logRadii[i], src.logRadii[i])
		}
	}
	//
	terms := make([]Term[E], 0, len(x.coeffs))
	//
	for _, t := range x.coeffs {
		terms = append(terms, Term[E]{a, t.coeff, t.exponent.Clone()})
	}
	//
	return a.newElement(terms, x.prec), nil
}

// Algebra returns the ambient algebra of this element.
func (x *Element[E]) Algebra() *Algebra[E] {
	return x.algebra
}

// Precision returns the absolute precision of this element.
func (x *Element[E]) Precision() math.ExtInt {
	return x.prec
}

// IsZero checks whether this element is zero: exactly zero as a stored
// mapping when no precision is given, or of valuation at least the given
// precision otherwise.
func (x *Element[E]) IsZero(prec ...int64) bool {
	if len(prec) == 0 {
		return len(x.coeffs) == 0
	}
	//
	return x.Valuation() >= prec[0]
}

// Equal determines whether two elements coincide as stored values: same
// precision and matching reduced mappings.
func (x *Element[E]) Equal(y *Element[E]) bool {
	if !x.algebra.Compatible(y.algebra) || x.prec.Cmp(y.prec) != 0 || len(x.coeffs) != len(y.coeffs) {
		return false
	}
	//
	for key, t := range x.coeffs {
		o, ok := y.coeffs[key]
		//
		if !ok || !t.coeff.Equals(o.coeff) {
			return false
		}
	}
	//
	return true
}

// Terms returns the terms of this element sorted in descending term order.
// The returned slice is the element's internal cache and must not be
// modified.
func (x *Element[E]) Terms() []Term[E] {
	if x.sorted == nil && len(x.coeffs) > 0 {
		terms := make([]Term[E], 0, len(x.coeffs))
		//
		for _, t := range x.coeffs {
			terms = append(terms, t)
		}
		//
		slices.SortFunc(terms, func(s, t Term[E]) int {
			return t.Cmp(s)
		})
		//
		x.sorted = terms
	}
	//
	return x.sorted
}

// LeadingTerm returns the greatest term of this element under the term
// order, reporting failure on the zero element.
func (x *Element[E]) LeadingTerm() (Term[E], bool) {
	if len(x.coeffs) == 0 {
		return Term[E]{}, false
	}
	//
	return x.Terms()[0], true
}

// Coefficient returns the coefficient stored for the given exponent.
func (x *Element[E]) Coefficient(e Exponent) (E, bool) {
	t, ok := x.coeffs[e.Key()]
	//
	return t.coeff, ok
}

// Coefficients returns the coefficients of this element in descending term
// order.
func (x *Element[E]) Coefficients() []E {
	terms := x.Terms()
	coeffs := make([]E, len(terms))
	//
	for i, t := range terms {
		coeffs[i] = t.coeff
	}
	//
	return coeffs
}

// Dict returns the exponent-to-coefficient mapping of this element, keyed by
// the printed form of each exponent vector.  Ordering is irrelevant.
func (x *Element[E]) Dict() map[string]E {
	dict := make(map[string]E, len(x.coeffs))
	//
	for _, t := range x.coeffs {
		dict[t.exponent.String()] = t.coeff
	}
	//
	return dict
}

// Valuation returns the valuation of this element, capped at the algebra's
// precision cap.  The zero element returns the cap itself, keeping downstream
// arithmetic decidable.
func (x *Element[E]) Valuation() int64 {
	lt, ok := x.LeadingTerm()
	//
	if !ok {
		return x.algebra.cap
	}
	//
	return lt.Valuation().MinInt64(x.algebra.cap)
}

// Add x + y
func (x *Element[E]) Add(y *Element[E]) *Element[E] {
	x.algebra.checkOperands(x, y)
	//
	terms := make([]Term[E], 0, len(x.coeffs)+len(y.coeffs))
	//
	for _, t := range x.coeffs {
		terms = append(terms, t)
	}
	//
	for _, t := range y.coeffs {
		terms = append(terms, t)
	}
	//
	return x.algebra.newElement(terms, x.prec.Min(y.prec))
}

// Sub x - y
func (x *Element[E]) Sub(y *Element[E]) *Element[E] {
	return x.Add(y.Neg())
}

// Neg -x.  Negation loses no information, hence the result is not re-reduced
// against the precision bound.
func (x *Element[E]) Neg() *Element[E] {
	coeffs := make(map[string]Term[E], len(x.coeffs))
	//
	for key, t := range x.coeffs {
		coeffs[key] = Term[E]{x.algebra, t.coeff.Neg(), t.exponent}
	}
	//
	return &Element[E]{x.algebra, coeffs, x.prec, nil}
}

// Mul x * y.  The precision of a product is min(prec(x)+val(y),
// prec(y)+val(x)): what is unknown of each operand's tail is scaled by the
// valuation of the other operand, not by its precision.
func (x *Element[E]) Mul(y *Element[E]) *Element[E] {
	x.algebra.checkOperands(x, y)
	//
	var (
		bound = x.prec.AddInt64(y.Valuation()).Min(y.prec.AddInt64(x.Valuation()))
		terms = make([]Term[E], 0, len(x.coeffs)*len(y.coeffs))
	)
	//
	for _, s := range x.coeffs {
		for _, t := range y.coeffs {
			terms = append(terms, s.Mul(t))
		}
	}
	//
	return x.algebra.newElement(terms, bound)
}

// MulScalar multiplies every coefficient by a base-ring scalar.
func (x *Element[E]) MulScalar(scalar E) *Element[E] {
	terms := make([]Term[E], 0, len(x.coeffs))
	//
	for _, t := range x.coeffs {
		terms = append(terms, t.MulScalar(scalar))
	}
	//
	return x.algebra.newElement(terms, x.prec.Add(scalar.Valuation()))
}

// MulTerm multiplies this element by a single term.
func (x *Element[E]) MulTerm(t Term[E]) *Element[E] {
	if !x.algebra.Compatible(t.algebra) {
		panic(ErrDomainMismatch)
	}
	//
	terms := make([]Term[E], 0, len(x.coeffs))
	//
	for _, s := range x.coeffs {
		terms = append(terms, s.Mul(t))
	}
	//
	return x.algebra.newElement(terms, x.prec.Add(t.Valuation()))
}

// ShiftUniformizer multiplies this element by the n-th power of the
// uniformizer.  Over a non-field base a negative n floors each coefficient
// against the minimal valuation its monomial admits, consistently with the
// log-radius offsets.
func (x *Element[E]) ShiftUniformizer(n int64) *Element[E] {
	terms := make([]Term[E], 0, len(x.coeffs))
	//
	for _, t := range x.coeffs {
		c := t.coeff
		//
		if x.algebra.base.IsField() || n >= 0 {
			c = c.ShiftUniformizer(n)
		} else {
			// Floor against the minimal coefficient valuation of the monomial
			floor := max(0, x.algebra.radiiWeight(t.exponent))
			c = c.ShiftUniformizer(n - floor).ShiftUniformizer(floor)
		}
		//
		terms = append(terms, Term[E]{x.algebra, c, t.exponent})
	}
	//
	return x.algebra.newElement(terms, x.prec.AddInt64(n))
}

// AddBigOh truncates this element to absolute precision n.  Terms whose
// valuation reaches the new bound are discarded and the surviving
// coefficients are truncated to match.
func (x *Element[E]) AddBigOh(n int64) *Element[E] {
	var (
		prec  = x.prec.Min(math.NewExtInt(n))
		terms = make([]Term[E], 0, len(x.coeffs))
	)
	//
	for _, t := range x.coeffs {
		if t.Valuation().Cmp(prec) >= 0 {
			continue
		}
		//
		w := x.algebra.radiiWeight(t.exponent)
		terms = append(terms, Term[E]{x.algebra, t.coeff.AddBigOh(prec.Int64() + w), t.exponent})
	}
	//
	return x.algebra.newElement(terms, prec)
}

// lift reinterprets every stored coefficient as exact and discards the
// element's precision bound.  Used by the Newton iteration, which gains
// precision faster than the tracking rules can prove.
func (x *Element[E]) lift() *Element[E] {
	terms := make([]Term[E], 0, len(x.coeffs))
	//
	for _, t := range x.coeffs {
		terms = append(terms, Term[E]{x.algebra, t.coeff.Lift(), t.exponent})
	}
	//
	return x.algebra.newElement(terms, math.PosInfinity)
}

// Monic divides every coefficient by the leading coefficient, reducing the
// precision by the leading coefficient's valuation.
func (x *Element[E]) Monic() (*Element[E], error) {
	lt, ok := x.LeadingTerm()
	//
	if !ok {
		return nil, fmt.Errorf("%w: cannot normalise the zero element", ErrZeroOperand)
	}
	//
	v, u := lt.coeff.ValUnit()
	//
	inv, err := u.InverseOfUnit()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInvertible, err)
	}
	//
	return x.MulScalar(inv).ShiftUniformizer(-v), nil
}

// Restriction re-expresses this element in the algebra restricted to the
// given (smaller) convergence polydisc.
func (x *Element[E]) Restriction(logRadii []int64) (*Element[E], error) {
	restricted, err := x.algebra.Restriction(logRadii)
	if err != nil {
		return nil, err
	}
	//
	return restricted.FromElement(x)
}

// Residue reduces this element modulo the prec-th power of the uniformizer,
// dropping every term which vanishes in the quotient.  Residues are only
// defined over the unit polydisc.
func (x *Element[E]) Residue(prec int64) (*Element[E], error) {
	switch {
	case !x.algebra.unitPolydisc():
		return nil, fmt.Errorf("%w: log-radii are %v", ErrResidueUnsupported, x.algebra.logRadii)
	case prec < 1 || prec > x.algebra.cap:
		return nil, fmt.Errorf("%w: precision %d outside (0, %d]", ErrResidueUnsupported, prec, x.algebra.cap)
	}
	//
	terms := make([]Term[E], 0, len(x.coeffs))
	//
	for _, t := range x.coeffs {
		if t.coeff.Valuation().CmpInt64(0) < 0 {
			return nil, fmt.Errorf("%w: %s has negative valuation", ErrResidueUnsupported, t)
		}
		//
		terms = append(terms, Term[E]{x.algebra, t.coeff.AddBigOh(prec), t.exponent})
	}
	//
	return x.algebra.newElement(terms, math.NewExtInt(prec)), nil
}

// Degree returns the total degree of the residue of this element at one more
// than its valuation, or -1 for the zero element.
func (x *Element[E]) Degree() (int64, error) {
	if !x.algebra.unitPolydisc() {
		return 0, fmt.Errorf("%w: log-radii are %v", ErrResidueUnsupported, x.algebra.logRadii)
	}
	//
	var (
		v      = x.Valuation()
		degree = int64(-1)
	)
	//
	for _, t := range x.coeffs {
		if t.Valuation().CmpInt64(v) <= 0 {
			degree = max(degree, int64(t.exponent.Degree()))
		}
	}
	//
	return degree, nil
}

// Degrees returns the per-variable degrees of the residue of this element at
// one more than its valuation.
func (x *Element[E]) Degrees() ([]int64, error) {
	if !x.algebra.unitPolydisc() {
		return nil, fmt.Errorf("%w: log-radii are %v", ErrResidueUnsupported, x.algebra.logRadii)
	}
	//
	var (
		v       = x.Valuation()
		degrees = make([]int64, x.algebra.NumVariables())
	)
	//
	for i := range degrees {
		degrees[i] = -1
	}
	//
	for _, t := range x.coeffs {
		if t.Valuation().CmpInt64(v) <= 0 {
			for i, n := range t.exponent {
				degrees[i] = max(degrees[i], int64(n))
			}
		}
	}
	//
	return degrees, nil
}

func (x *Element[E]) String() string {
	if len(x.coeffs) == 0 {
		return "0"
	}
	//
	var buf strings.Builder
	//
	for i, t := range x.Terms() {
		if i != 0 {
			buf.WriteString(" + ")
		}
		//
		buf.WriteString(t.String())
	}
	//
	return buf.String()
}
