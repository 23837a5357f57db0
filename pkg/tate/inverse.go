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

	log "github.com/sirupsen/logrus"
)

// IsUnit determines whether this element is invertible: nonzero, constant
// leading monomial and, over a non-field base ring, a leading term of
// valuation zero.
func (x *Element[E]) IsUnit() bool {
	lt, ok := x.LeadingTerm()
	//
	switch {
	case !ok:
		return false
	case lt.exponent.Degree() != 0:
		return false
	case x.algebra.base.IsField():
		return true
	default:
		return lt.Valuation().CmpInt64(0) == 0
	}
}

// InverseOfUnit inverts a unit by Newton's iteration inv ← 2·inv - x·inv²,
// which doubles the number of trusted digits each round until the precision
// cap is reached.
func (x *Element[E]) InverseOfUnit() (*Element[E], error) {
	lt, ok := x.LeadingTerm()
	//
	if !ok || !x.IsUnit() {
		return nil, fmt.Errorf("%w: %s", ErrNotInvertible, x)
	}
	//
	var (
		a      = x.algebra
		cap    = a.cap
		v, u   = lt.coeff.ValUnit()
		scaled = x.ShiftUniformizer(-v).AddBigOh(cap)
	)
	// Seed with a first-order inverse of the unit part
	seed, err := u.InverseOfUnit()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInvertible, err)
	}
	//
	inv := a.FromScalar(seed).AddBigOh(1)
	//
	for trusted := int64(1); trusted < cap; {
		trusted = min(2*trusted, cap)
		// The Newton step is correct to twice the digits its operands claim,
		// so the iterate is lifted before the doubled bound is imposed.
		lifted := inv.lift()
		inv = lifted.Add(lifted).Sub(scaled.Mul(lifted).Mul(lifted)).AddBigOh(trusted)
		//
		log.Debug("unit inversion trusted to ", trusted, " of ", cap, " digits")
	}
	// Reapply the uniformizer power with the opposite sign
	return inv.ShiftUniformizer(-v), nil
}
