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
	"strings"

	"github.com/padiclabs/go-tate/pkg/ring"
	"github.com/padiclabs/go-tate/pkg/util/math"
)

// Term is an immutable coefficient-and-monomial pair belonging to an ambient
// algebra.  All operations return fresh terms.
type Term[E ring.Element[E]] struct {
	algebra  *Algebra[E]
	coeff    E
	exponent Exponent
}

// NewTerm constructs a term of this algebra, failing when the exponent vector
// does not match the algebra's variable count.
func (a *Algebra[E]) NewTerm(coeff E, exponent Exponent) (Term[E], error) {
	if uint(len(exponent)) != a.NumVariables() {
		return Term[E]{}, fmt.Errorf("%w: exponent %s has %d entries for %d variables",
			ErrDomainMismatch, exponent, len(exponent), a.NumVariables())
	}
	//
	return Term[E]{a, coeff, exponent.Clone()}, nil
}

// Coefficient returns the coefficient of this term.
func (t Term[E]) Coefficient() E {
	return t.coeff
}

// Exponent returns the exponent vector of this term.
func (t Term[E]) Exponent() Exponent {
	return t.exponent.Clone()
}

// IsZero checks whether the coefficient of this term is zero.
func (t Term[E]) IsZero() bool {
	return t.coeff.IsZero()
}

// Valuation returns the valuation of this term: the valuation of its
// coefficient, offset by the log-radii of the polydisc.
func (t Term[E]) Valuation() math.ExtInt {
	return t.coeff.Valuation().AddInt64(-t.algebra.radiiWeight(t.exponent))
}

// Cmp orders terms by descending valuation first (a smaller valuation makes a
// greater term), breaking ties with the algebra's monomial order and finally
// with the coefficient order, so that no two distinct terms compare equal.
// The result is positive when t is the greater term.
func (t Term[E]) Cmp(o Term[E]) int {
	if c := t.Valuation().Cmp(o.Valuation()); c != 0 {
		return -c
	}
	//
	if c := t.algebra.order.Compare(t.exponent, o.exponent); c != 0 {
		return c
	}
	//
	return t.coeff.Cmp(o.coeff)
}

// Equals determines whether two terms have the same coefficient and exponent.
func (t Term[E]) Equals(o Term[E]) bool {
	return t.exponent.Equals(o.exponent) && t.coeff.Equals(o.coeff)
}

// Mul returns the product of two terms.
func (t Term[E]) Mul(o Term[E]) Term[E] {
	if !t.algebra.Compatible(o.algebra) {
		panic(ErrDomainMismatch)
	}
	//
	return Term[E]{t.algebra, t.coeff.Mul(o.coeff), t.exponent.Add(o.exponent)}
}

// MulScalar multiplies the coefficient of this term by a base-ring scalar.
func (t Term[E]) MulScalar(scalar E) Term[E] {
	return Term[E]{t.algebra, t.coeff.Mul(scalar), t.exponent.Clone()}
}

// Gcd returns the greatest common divisor of two terms viewed as monomial
// ideal generators: the exponent-wise minimum, with the uniformizer raised to
// the smaller of the two valuations as coefficient.  Unit parts of the
// coefficients are deliberately ignored.  The coefficient is drawn from the
// fraction field of the base ring, since nonzero log-radii can push term
// valuations negative.
func (t Term[E]) Gcd(o Term[E]) Term[E] {
	v := t.Valuation().Min(o.Valuation())
	//
	return Term[E]{t.algebra, t.algebra.base.FractionField().UniformizerPow(v.Int64()), t.exponent.Min(o.exponent)}
}

// Lcm returns the least common multiple of two terms viewed as monomial ideal
// generators: the exponent-wise maximum, with the uniformizer raised to the
// larger of the two valuations as coefficient, drawn from the fraction field
// of the base ring.
func (t Term[E]) Lcm(o Term[E]) Term[E] {
	v := t.Valuation().Max(o.Valuation())
	//
	return Term[E]{t.algebra, t.algebra.base.FractionField().UniformizerPow(v.Int64()), t.exponent.Max(o.exponent)}
}

// IsCoprimeWith determines whether two terms are coprime: no variable occurs
// in both, and, unless the base ring is a field, at least one of the two has
// valuation zero.
func (t Term[E]) IsCoprimeWith(o Term[E]) bool {
	for i := range t.exponent {
		if t.exponent[i] > 0 && o.exponent[i] > 0 {
			return false
		}
	}
	//
	if t.algebra.base.IsField() {
		return true
	}
	//
	return t.Valuation().CmpInt64(0) == 0 || o.Valuation().CmpInt64(0) == 0
}

// IsDivisibleBy determines whether this term is divisible by the other:
// exponent-wise domination, plus a valuation comparison when integrality is
// requested or forced by a non-field base ring.
func (t Term[E]) IsDivisibleBy(o Term[E], integral bool) bool {
	if !o.exponent.Divides(t.exponent) {
		return false
	}
	//
	if integral || !t.algebra.base.IsField() {
		return t.Valuation().Cmp(o.Valuation()) >= 0
	}
	//
	return true
}

// Quo returns the exact quotient of this term by the other, failing when the
// divisibility conditions of IsDivisibleBy are violated.
func (t Term[E]) Quo(o Term[E]) (Term[E], error) {
	if o.IsZero() {
		return Term[E]{}, fmt.Errorf("%w: division of %s by a zero term", ErrNonExactDivision, t)
	}
	//
	exponent, ok := t.exponent.Sub(o.exponent)
	//
	if !ok {
		return Term[E]{}, fmt.Errorf("%w: %s is not divisible by %s", ErrNonExactDivision, t, o)
	}
	//
	if !t.algebra.base.IsField() && t.Valuation().Cmp(o.Valuation()) < 0 {
		return Term[E]{}, fmt.Errorf("%w: quotient of %s by %s is not integral", ErrNonExactDivision, t, o)
	}
	v, u := o.coeff.ValUnit()
	//
	inv, err := u.InverseOfUnit()
	if err != nil {
		return Term[E]{}, fmt.Errorf("%w: %v", ErrNonExactDivision, err)
	}
	//
	if t.IsZero() {
		return Term[E]{t.algebra, t.coeff.Mul(inv).ShiftUniformizer(-v), exponent}, nil
	}
	// Divide coefficients as π^(v₁-v₂) * u₁ * u₂⁻¹ in the fraction field, so
	// that a coefficient valuation below v₂ survives whenever the log-radii
	// keep the quotient term itself integral.
	vt, ut := t.coeff.ValUnit()
	coeff := t.algebra.base.FractionField().UniformizerPow(vt - v).Mul(ut).Mul(inv)
	//
	return Term[E]{t.algebra, coeff, exponent}, nil
}

func (t Term[E]) String() string {
	var buf strings.Builder
	//
	fmt.Fprintf(&buf, "(%s)", t.coeff)
	//
	for i, n := range t.exponent {
		switch {
		case n == 1:
			fmt.Fprintf(&buf, "*%s", t.algebra.vars[i])
		case n > 1:
			fmt.Fprintf(&buf, "*%s^%d", t.algebra.vars[i], n)
		}
	}
	//
	return buf.String()
}
