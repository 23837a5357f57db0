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
package laurent

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/padiclabs/go-tate/pkg/ring"
	"github.com/padiclabs/go-tate/pkg/util/math"
)

// ErrNotUnit signals an inversion request on a non-invertible element.
var ErrNotUnit = errors.New("series is not a unit")

// Ring describes the power-series ring F[[t]] (or the Laurent-series field
// F((t)) when field is set) over the BLS12-377 scalar field, capped at a fixed
// number of t-adic digits.
type Ring struct {
	cap   int64
	field bool
}

// New constructs the power-series ring F[[t]] capped at the given absolute
// precision.
func New(cap int64) *Ring {
	if cap < 1 {
		panic(fmt.Sprintf("invalid series precision cap %d", cap))
	}
	//
	return &Ring{cap, false}
}

// NewField constructs the Laurent-series field F((t)) capped at the given
// absolute precision.
func NewField(cap int64) *Ring {
	r := New(cap)
	r.field = true
	//
	return r
}

// Element is a truncated (Laurent) series c₀tᵛ + c₁tᵛ⁺¹ + ... + O(tᵖ).  The
// first stored coefficient is nonzero; a zero element stores no coefficients.
type Element struct {
	ring   *Ring
	coeffs []fr.Element
	val    int64
	prec   math.ExtInt
}

// make constructs the canonical element whose coefficients start at t^shift,
// truncated to absolute precision prec.  Leading zero coefficients are
// stripped into the valuation and trailing coefficients beyond the precision
// are discarded.
func (r *Ring) make(coeffs []fr.Element, shift int64, prec math.ExtInt) Element {
	// Strip leading zeroes
	for len(coeffs) > 0 && coeffs[0].IsZero() {
		coeffs = coeffs[1:]
		shift++
	}
	// Discard digits beyond the precision
	if prec.IsFinite() {
		digits := prec.Int64() - shift
		//
		if digits <= 0 || len(coeffs) == 0 {
			return Element{r, nil, 0, prec}
		}
		//
		if int64(len(coeffs)) > digits {
			coeffs = coeffs[:digits]
		}
	} else if len(coeffs) == 0 {
		return Element{r, nil, 0, prec}
	}
	// Strip trailing zeroes
	for len(coeffs) > 0 && coeffs[len(coeffs)-1].IsZero() {
		coeffs = coeffs[:len(coeffs)-1]
	}
	//
	if len(coeffs) == 0 {
		return Element{r, nil, 0, prec}
	}
	//
	return Element{r, coeffs, shift, prec}
}

// Zero returns the exact zero series.
func (r *Ring) Zero() Element {
	return Element{r, nil, 0, math.PosInfinity}
}

// One returns one, known to the ring's precision cap.
func (r *Ring) One() Element {
	return r.FromInt64(1)
}

// FromInt64 constructs a constant series from a machine integer.
func (r *Ring) FromInt64(val int64) Element {
	return r.FromBig(big.NewInt(val))
}

// FromBig constructs a constant series from a big integer.
func (r *Ring) FromBig(val *big.Int) Element {
	var c fr.Element
	//
	c.SetBigInt(val)
	//
	return r.make([]fr.Element{c}, 0, math.NewExtInt(r.cap))
}

// FromCoefficients constructs the series Σ coeffs[i]·t^(shift+i).
func (r *Ring) FromCoefficients(coeffs []fr.Element, shift int64) Element {
	if shift < 0 && !r.field {
		panic(fmt.Sprintf("no pole of order %d in F[[t]]", -shift))
	}
	//
	clone := make([]fr.Element, len(coeffs))
	copy(clone, coeffs)
	//
	return r.make(clone, shift, math.NewExtInt(r.cap+min(shift, 0)))
}

// IsField reports whether this is F((t)) rather than F[[t]].
func (r *Ring) IsField() bool {
	return r.field
}

// FractionField returns F((t)) at the same precision cap.
func (r *Ring) FractionField() ring.Ring[Element] {
	if r.field {
		return r
	}
	//
	return &Ring{r.cap, true}
}

// UniformizerPow returns t^n.  Negative powers only exist over F((t)).
func (r *Ring) UniformizerPow(n int64) Element {
	if n < 0 && !r.field {
		panic(fmt.Sprintf("no negative uniformizer power t^%d in F[[t]]", n))
	}
	//
	var one fr.Element
	//
	one.SetOne()
	//
	return r.make([]fr.Element{one}, n, math.NewExtInt(r.cap+n))
}

// PrecisionCap returns the working precision of this ring.
func (r *Ring) PrecisionCap() math.ExtInt {
	return math.NewExtInt(r.cap)
}

// Ramification returns 1.
func (r *Ring) Ramification() int64 {
	return 1
}

// ResidueCardinality returns the order of the BLS12-377 scalar field.
func (r *Ring) ResidueCardinality() *big.Int {
	return fr.Modulus()
}

// Equals determines whether two ring descriptors denote the same ring.
func (r *Ring) Equals(other ring.Ring[Element]) bool {
	o, ok := other.(*Ring)
	//
	return ok && r.cap == o.cap && r.field == o.field
}

// coeff returns the coefficient of t^k, which is zero outside the stored
// window.
func (x Element) coeff(k int64) fr.Element {
	var c fr.Element
	//
	if k >= x.val && k < x.val+int64(len(x.coeffs)) {
		c = x.coeffs[k-x.val]
	}
	//
	return c
}

// Add x + y
func (x Element) Add(y Element) Element {
	var (
		prec = x.prec.Min(y.prec)
	)
	//
	switch {
	case x.IsZero() && y.IsZero():
		return Element{x.ring, nil, 0, prec}
	case x.IsZero():
		return x.ring.make(append([]fr.Element(nil), y.coeffs...), y.val, prec)
	case y.IsZero():
		return x.ring.make(append([]fr.Element(nil), x.coeffs...), x.val, prec)
	}
	//
	shift := min(x.val, y.val)
	last := max(x.val+int64(len(x.coeffs)), y.val+int64(len(y.coeffs)))
	sum := make([]fr.Element, last-shift)
	//
	for k := shift; k < last; k++ {
		xc, yc := x.coeff(k), y.coeff(k)
		sum[k-shift].Add(&xc, &yc)
	}
	//
	return x.ring.make(sum, shift, prec)
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	return x.Add(y.Neg())
}

// Mul x * y by plain convolution, truncated to the precision of the product.
func (x Element) Mul(y Element) Element {
	prec := x.prec.Add(y.Valuation()).Min(y.prec.Add(x.Valuation()))
	//
	if x.IsZero() || y.IsZero() {
		return Element{x.ring, nil, 0, prec}
	}
	//
	product := make([]fr.Element, len(x.coeffs)+len(y.coeffs)-1)
	//
	for i, xc := range x.coeffs {
		for j, yc := range y.coeffs {
			var c fr.Element
			//
			c.Mul(&xc, &yc)
			product[i+j].Add(&product[i+j], &c)
		}
	}
	//
	return x.ring.make(product, x.val+y.val, prec)
}

// Neg -x
func (x Element) Neg() Element {
	neg := make([]fr.Element, len(x.coeffs))
	//
	for i := range x.coeffs {
		neg[i].Neg(&x.coeffs[i])
	}
	//
	return Element{x.ring, neg, x.val, x.prec}
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
	}
	//
	for k := int64(0); k < max(int64(len(x.coeffs)), int64(len(y.coeffs))); k++ {
		xc, yc := x.coeff(x.val+k), y.coeff(y.val+k)
		//
		if c := xc.Cmp(&yc); c != 0 {
			return c
		}
	}
	//
	return 0
}

// Equals determines whether two elements are indistinguishable at their shared
// precision.
func (x Element) Equals(y Element) bool {
	return x.Sub(y).IsZero()
}

// IsZero checks whether this element is zero at its stated precision.
func (x Element) IsZero() bool {
	return len(x.coeffs) == 0
}

// IsUnit checks whether this element is invertible.
func (x Element) IsUnit() bool {
	if x.IsZero() {
		return false
	}
	//
	return x.ring.field || x.val == 0
}

// Valuation returns the t-adic valuation, i.e. the order of vanishing at 0.
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

// ValUnit decomposes x as u * t^v, returning (v, u).
func (x Element) ValUnit() (int64, Element) {
	if x.IsZero() {
		panic("cannot decompose zero into valuation and unit")
	}
	//
	unit := make([]fr.Element, len(x.coeffs))
	copy(unit, x.coeffs)
	//
	return x.val, Element{x.ring, unit, 0, x.prec.AddInt64(-x.val)}
}

// InverseOfUnit computes x⁻¹ by the usual linear recurrence on series
// coefficients b₀ = a₀⁻¹, bₙ = -a₀⁻¹ Σ aₖ bₙ₋ₖ.
func (x Element) InverseOfUnit() (Element, error) {
	if !x.IsUnit() {
		return Element{}, fmt.Errorf("%w: %s", ErrNotUnit, x.String())
	}
	//
	var (
		digits = x.prec.AddInt64(-x.val).MinInt64(x.ring.cap)
		lead   fr.Element
		inv    = make([]fr.Element, digits)
	)
	//
	lead.Inverse(&x.coeffs[0])
	inv[0] = lead
	//
	for n := int64(1); n < digits; n++ {
		var acc fr.Element
		//
		for k := int64(1); k <= n; k++ {
			var c fr.Element
			//
			ak := x.coeff(x.val + k)
			c.Mul(&ak, &inv[n-k])
			acc.Add(&acc, &c)
		}
		//
		acc.Mul(&acc, &lead)
		inv[n].Neg(&acc)
	}
	//
	return x.ring.make(inv, -x.val, math.NewExtInt(digits-x.val)), nil
}

// ShiftUniformizer computes x * t^n.  Over F[[t]] a negative n floors away
// any coefficient that would acquire negative degree.
func (x Element) ShiftUniformizer(n int64) Element {
	prec := x.prec.AddInt64(n)
	//
	if x.IsZero() {
		return Element{x.ring, nil, 0, prec}
	}
	//
	shift := x.val + n
	coeffs := append([]fr.Element(nil), x.coeffs...)
	//
	if shift < 0 && !x.ring.field {
		// Truncating division by t^(-n)
		if int64(len(coeffs)) <= -shift {
			return Element{x.ring, nil, 0, prec}
		}
		//
		coeffs = coeffs[-shift:]
		shift = 0
	}
	//
	return x.ring.make(coeffs, shift, prec)
}

// AddBigOh truncates this element to absolute precision n.
func (x Element) AddBigOh(n int64) Element {
	return x.ring.make(append([]fr.Element(nil), x.coeffs...), x.val, x.prec.Min(math.NewExtInt(n)))
}

// Lift reinterprets the stored representative as exact.
func (x Element) Lift() Element {
	return x.ring.make(append([]fr.Element(nil), x.coeffs...), x.val, math.PosInfinity)
}

func (x Element) String() string {
	var buf strings.Builder
	//
	if x.IsZero() && !x.prec.IsFinite() {
		return "0"
	}
	//
	for i, c := range x.coeffs {
		if i != 0 {
			buf.WriteString(" + ")
		}
		//
		switch k := x.val + int64(i); {
		case k == 0:
			buf.WriteString(c.String())
		case k == 1:
			fmt.Fprintf(&buf, "%s*t", c.String())
		default:
			fmt.Fprintf(&buf, "%s*t^%d", c.String(), k)
		}
	}
	//
	if x.prec.IsFinite() {
		if len(x.coeffs) != 0 {
			buf.WriteString(" + ")
		}
		//
		fmt.Fprintf(&buf, "O(t^%s)", x.prec)
	}
	//
	return buf.String()
}
