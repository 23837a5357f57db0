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
package padic

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/padiclabs/go-tate/pkg/ring"
	"github.com/padiclabs/go-tate/pkg/util/math"
)

// ErrNotUnit signals an inversion request on a non-invertible element.
var ErrNotUnit = errors.New("element is not a unit")

// Ring describes Z_p (or Q_p when field is set) at a fixed working precision.
// The prime is taken on trust; validating primality is the caller's problem.
type Ring struct {
	p     *big.Int
	cap   int64
	field bool
}

// New constructs the ring of p-adic integers Z_p capped at the given absolute
// precision.
func New(p int64, cap int64) *Ring {
	if p < 2 || cap < 1 {
		panic(fmt.Sprintf("invalid p-adic ring Z_%d with cap %d", p, cap))
	}
	//
	return &Ring{big.NewInt(p), cap, false}
}

// NewField constructs the field of p-adic numbers Q_p capped at the given
// absolute precision.
func NewField(p int64, cap int64) *Ring {
	r := New(p, cap)
	r.field = true
	//
	return r
}

// Element is a p-adic number x = unit * p^val with the unit part held modulo
// p^(prec-val).  A zero element stores only its precision.
type Element struct {
	ring *Ring
	// unit part, canonically reduced into [0, p^(prec-val)) whenever the
	// precision is finite.  A zero unit denotes the zero element.
	unit big.Int
	val  int64
	prec math.ExtInt
}

// pow returns p^k as a fresh big integer.  The exponent must be non-negative.
func (r *Ring) pow(k int64) *big.Int {
	var res big.Int
	//
	res.Exp(r.p, big.NewInt(k), nil)
	//
	return &res
}

// make constructs the canonical element representing m * p^shift at absolute
// precision prec.  The mantissa is reduced, p factors are stripped into the
// valuation, and anything indistinguishable from zero collapses to zero.
func (r *Ring) make(m *big.Int, shift int64, prec math.ExtInt) Element {
	var unit big.Int
	// Reduce mantissa against available digits
	if prec.IsFinite() {
		digits := prec.Int64() - shift
		//
		if digits <= 0 {
			return Element{r, big.Int{}, 0, prec}
		}
		//
		unit.Mod(m, r.pow(digits))
	} else {
		unit.Set(m)
	}
	//
	if unit.Sign() == 0 {
		return Element{r, big.Int{}, 0, prec}
	}
	// Strip uniformizer factors into the valuation
	var q, rem big.Int
	//
	for {
		q.QuoRem(&unit, r.p, &rem)
		//
		if rem.Sign() != 0 {
			break
		}
		//
		unit.Set(&q)
		shift++
	}
	//
	return Element{r, unit, shift, prec}
}

// Zero returns the exact zero of this ring.
func (r *Ring) Zero() Element {
	return Element{r, big.Int{}, 0, math.PosInfinity}
}

// One returns one, known to the ring's precision cap.
func (r *Ring) One() Element {
	return r.FromInt64(1)
}

// FromInt64 constructs an element from a machine integer.
func (r *Ring) FromInt64(val int64) Element {
	return r.FromBig(big.NewInt(val))
}

// FromBig constructs an element from a big integer.
func (r *Ring) FromBig(val *big.Int) Element {
	return r.make(val, 0, math.NewExtInt(r.cap))
}

// IsField reports whether this is Q_p rather than Z_p.
func (r *Ring) IsField() bool {
	return r.field
}

// FractionField returns Q_p at the same prime and precision cap.
func (r *Ring) FractionField() ring.Ring[Element] {
	if r.field {
		return r
	}
	//
	return &Ring{r.p, r.cap, true}
}

// UniformizerPow returns p^n.  Negative powers only exist over Q_p.
func (r *Ring) UniformizerPow(n int64) Element {
	if n < 0 && !r.field {
		panic(fmt.Sprintf("no negative uniformizer power p^%d in Z_p", n))
	}
	//
	return r.make(big.NewInt(1), n, math.NewExtInt(r.cap+n))
}

// PrecisionCap returns the working precision of this ring.
func (r *Ring) PrecisionCap() math.ExtInt {
	return math.NewExtInt(r.cap)
}

// Ramification returns 1: Z_p and Q_p are unramified over themselves.
func (r *Ring) Ramification() int64 {
	return 1
}

// ResidueCardinality returns p, the size of the residue field F_p.
func (r *Ring) ResidueCardinality() *big.Int {
	var p big.Int
	//
	p.Set(r.p)
	//
	return &p
}

// Equals determines whether two ring descriptors denote the same ring.
func (r *Ring) Equals(other ring.Ring[Element]) bool {
	o, ok := other.(*Ring)
	//
	return ok && r.p.Cmp(o.p) == 0 && r.cap == o.cap && r.field == o.field
}

// Add x + y
func (x Element) Add(y Element) Element {
	var (
		m    big.Int
		prec = x.prec.Min(y.prec)
	)
	//
	switch {
	case x.IsZero() && y.IsZero():
		return Element{x.ring, big.Int{}, 0, prec}
	case x.IsZero():
		return x.ring.make(&y.unit, y.val, prec)
	case y.IsZero():
		return x.ring.make(&x.unit, x.val, prec)
	}
	//
	shift := min(x.val, y.val)
	m.Mul(&x.unit, x.ring.pow(x.val-shift))
	m.Add(&m, new(big.Int).Mul(&y.unit, x.ring.pow(y.val-shift)))
	//
	return x.ring.make(&m, shift, prec)
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return x.Add(y.Neg())
}

// Mul x * y.  The precision of a product is min(prec(x)+val(y),
// prec(y)+val(x)): each operand's unknown tail is scaled by the other
// operand's size.
func (x Element) Mul(y Element) Element {
	var (
		m    big.Int
		prec = x.prec.Add(y.Valuation()).Min(y.prec.Add(x.Valuation()))
	)
	//
	if x.IsZero() || y.IsZero() {
		return Element{x.ring, big.Int{}, 0, prec}
	}
	//
	m.Mul(&x.unit, &y.unit)
	//
	return x.ring.make(&m, x.val+y.val, prec)
}

// Neg -x
func (x Element) Neg() Element {
	var m big.Int
	//
	m.Neg(&x.unit)
	//
	return x.ring.make(&m, x.val, x.prec)
}

// Cmp provides a deterministic total order over elements, used for
// tie-breaking only.
func (x Element) Cmp(y Element) int {
	switch {
	case x.IsZero() && y.IsZero():
		return 0
	case x.IsZero():
		return -1
	case y.IsZero():
		return 1
	case x.val != y.val:
		if x.val < y.val {
			return 1
		}
		//
		return -1
	default:
		return x.unit.Cmp(&y.unit)
	}
}

// Equals determines whether two elements are indistinguishable at their shared
// precision.
func (x Element) Equals(y Element) bool {
	return x.Sub(y).IsZero()
}

// IsZero checks whether this element is zero at its stated precision.
func (x Element) IsZero() bool {
	return x.unit.Sign() == 0
}

// IsUnit checks whether this element is invertible.
func (x Element) IsUnit() bool {
	if x.IsZero() {
		return false
	}
	//
	return x.ring.field || x.val == 0
}

// Valuation returns the p-adic valuation.  A zero element returns its
// precision, since nothing more is known about it.
func (x Element) Valuation() math.ExtInt {
	if x.IsZero() {
		return x.prec
	}
	//
	return math.NewExtInt(x.val)
}

// Precision returns the absolute precision of this element.
func (x Element) Precision() math.ExtInt {
	return x.prec
}

// ValUnit decomposes x as u * p^v, returning (v, u).
func (x Element) ValUnit() (int64, Element) {
	if x.IsZero() {
		panic("cannot decompose zero into valuation and unit")
	}
	//
	var unit big.Int
	//
	unit.Set(&x.unit)
	//
	return x.val, Element{x.ring, unit, 0, x.prec.AddInt64(-x.val)}
}

// InverseOfUnit computes x⁻¹ via a modular inverse of the unit part.
func (x Element) InverseOfUnit() (Element, error) {
	if !x.IsUnit() {
		return Element{}, fmt.Errorf("%w: %s", ErrNotUnit, x.String())
	}
	// Number of digits the inverse can be trusted to
	digits := x.prec.AddInt64(-x.val).MinInt64(x.ring.cap)
	//
	var inv big.Int
	//
	inv.ModInverse(&x.unit, x.ring.pow(digits))
	//
	return x.ring.make(&inv, -x.val, math.NewExtInt(digits-x.val)), nil
}

// ShiftUniformizer computes x * p^n.  Over Z_p a negative n floors away any
// part of x that would acquire negative valuation.
func (x Element) ShiftUniformizer(n int64) Element {
	prec := x.prec.AddInt64(n)
	//
	if x.IsZero() {
		return Element{x.ring, big.Int{}, 0, prec}
	}
	//
	if x.ring.field || x.val+n >= 0 {
		return x.ring.make(&x.unit, x.val+n, prec)
	}
	// Truncating division by p^(-n)
	var m big.Int
	//
	m.Mul(&x.unit, x.ring.pow(x.val))
	m.Div(&m, x.ring.pow(-n))
	//
	return x.ring.make(&m, 0, prec)
}

// AddBigOh truncates this element to absolute precision n.
func (x Element) AddBigOh(n int64) Element {
	return x.ring.make(&x.unit, x.val, x.prec.Min(math.NewExtInt(n)))
}

// Lift reinterprets the stored representative as exact.
func (x Element) Lift() Element {
	return x.ring.make(&x.unit, x.val, math.PosInfinity)
}

func (x Element) String() string {
	var repr string
	//
	switch {
	case x.IsZero() && !x.prec.IsFinite():
		return "0"
	case x.IsZero():
		return fmt.Sprintf("O(%s^%s)", x.ring.p, x.prec)
	case x.val >= 0:
		var m big.Int
		//
		m.Mul(&x.unit, x.ring.pow(x.val))
		repr = m.String()
	default:
		repr = fmt.Sprintf("%s/%s", &x.unit, x.ring.pow(-x.val))
	}
	//
	if !x.prec.IsFinite() {
		return repr
	}
	//
	return fmt.Sprintf("%s + O(%s^%s)", repr, x.ring.p, x.prec)
}
