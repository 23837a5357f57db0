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

	"github.com/padiclabs/go-tate/pkg/ring"
	"github.com/padiclabs/go-tate/pkg/util/math"
)

// Algebra is the ambient Tate algebra: multivariate power series over a
// complete discrete-valuation ring or field, convergent on the polydisc
// described by the per-variable log-radii, with all arithmetic truncated at
// the precision cap.  An algebra is immutable once constructed.
type Algebra[E ring.Element[E]] struct {
	base     ring.Ring[E]
	vars     []string
	logRadii []int64
	cap      int64
	order    MonomialOrder
}

// New constructs a Tate algebra over the unit polydisc (all log-radii zero),
// inheriting its precision cap from the base ring and ordering monomials by
// degrevlex.
func New[E ring.Element[E]](base ring.Ring[E], vars ...string) *Algebra[E] {
	return NewWith(base, vars, make([]int64, len(vars)), base.PrecisionCap().Int64(), Degrevlex)
}

// NewWith constructs a Tate algebra with explicit log-radii, precision cap and
// monomial order.
func NewWith[E ring.Element[E]](base ring.Ring[E], vars []string, logRadii []int64,
	cap int64, order MonomialOrder) *Algebra[E] {
	switch {
	case len(vars) == 0:
		panic("a Tate algebra needs at least one variable")
	case len(logRadii) != len(vars):
		panic(fmt.Sprintf("%d log-radii given for %d variables", len(logRadii), len(vars)))
	case cap < 1:
		panic(fmt.Sprintf("invalid precision cap %d", cap))
	}
	//
	for i, v := range vars {
		if slices.Index(vars, v) != i {
			panic(fmt.Sprintf("duplicate variable %q", v))
		}
	}
	//
	return &Algebra[E]{base, slices.Clone(vars), slices.Clone(logRadii), cap, order}
}

// Base returns the base ring of this algebra.
func (a *Algebra[E]) Base() ring.Ring[E] {
	return a.base
}

// Variables returns the variable names of this algebra.
func (a *Algebra[E]) Variables() []string {
	return slices.Clone(a.vars)
}

// NumVariables returns the number of variables of this algebra.
func (a *Algebra[E]) NumVariables() uint {
	return uint(len(a.vars))
}

// LogRadii returns the per-variable log-radii of the convergence polydisc.
func (a *Algebra[E]) LogRadii() []int64 {
	return slices.Clone(a.logRadii)
}

// PrecisionCap returns the working precision of this algebra.
func (a *Algebra[E]) PrecisionCap() int64 {
	return a.cap
}

// Order returns the monomial order used to break valuation ties.
func (a *Algebra[E]) Order() MonomialOrder {
	return a.order
}

// Compatible determines whether elements of this algebra and the other may be
// combined by a ring operation.
func (a *Algebra[E]) Compatible(other *Algebra[E]) bool {
	if a == other {
		return true
	}
	//
	return a.base.Equals(other.base) && slices.Equal(a.vars, other.vars) &&
		slices.Equal(a.logRadii, other.logRadii) && a.cap == other.cap &&
		a.order.Name() == other.order.Name()
}

// radiiWeight returns Σ exponent[i] * logRadii[i], the amount by which an
// exponent vector offsets the valuation of its coefficient.
func (a *Algebra[E]) radiiWeight(e Exponent) int64 {
	var sum int64
	//
	for i, n := range e {
		sum += int64(n) * a.logRadii[i]
	}
	//
	return sum
}

// unitPolydisc reports whether every log-radius is zero.
func (a *Algebra[E]) unitPolydisc() bool {
	for _, r := range a.logRadii {
		if r != 0 {
			return false
		}
	}
	//
	return true
}

// Restriction constructs the algebra with the same base, variables, cap and
// order, but the given log-radii.  The new radii must each dominate the old
// ones, scaled by the ratio of ramification indices; anything else would
// extrapolate convergence rather than restrict it.
func (a *Algebra[E]) Restriction(logRadii []int64) (*Algebra[E], error) {
	if len(logRadii) != len(a.logRadii) {
		return nil, fmt.Errorf("%w: %d log-radii given for %d variables",
			ErrDomainMismatch, len(logRadii), len(a.logRadii))
	}
	//
	for i := range logRadii {
		if logRadii[i] < a.logRadii[i] {
			return nil, fmt.Errorf("%w: log-radius %d of %q would enlarge the domain (%d < %d)",
				ErrDomainMismatch, i, a.vars[i], logRadii[i], a.logRadii[i])
		}
	}
	//
	return NewWith(a.base, a.vars, logRadii, a.cap, a.order), nil
}

// checkOperands panics unless both elements belong to (compatible copies of)
// this algebra.  Mixing algebras in a ring operation is a programming error,
// not a data condition.
func (a *Algebra[E]) checkOperands(x, y *Element[E]) {
	if !a.Compatible(x.algebra) || !a.Compatible(y.algebra) {
		panic(ErrDomainMismatch)
	}
}

// capExt returns the precision cap as an extended integer.
func (a *Algebra[E]) capExt() math.ExtInt {
	return math.NewExtInt(a.cap)
}
