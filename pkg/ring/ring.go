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
package ring

import (
	"fmt"
	"math/big"

	"github.com/padiclabs/go-tate/pkg/util/math"
)

// An Element of a complete discrete-valuation ring (or its fraction field),
// tracked to a finite absolute precision.  Elements are immutable values: every
// operation returns a fresh element and leaves its operands untouched.
type Element[Operand any] interface {
	fmt.Stringer
	// Add x + y
	Add(y Operand) Operand
	// Sub x - y
	Sub(y Operand) Operand
	// Mul x * y
	Mul(y Operand) Operand
	// Neg -x
	Neg() Operand
	// Cmp provides an arbitrary (but deterministic) total order over elements,
	// used for tie-breaking only.  It carries no arithmetic meaning.
	Cmp(y Operand) int
	// Equals determines whether two elements are indistinguishable at their
	// shared precision.
	Equals(y Operand) bool
	// IsZero checks whether this element is zero (at its stated precision).
	IsZero() bool
	// IsUnit checks whether this element is invertible in the ring.
	IsUnit() bool
	// Valuation returns the valuation of this element.  A zero element returns
	// its precision, since nothing more is known about it.
	Valuation() math.ExtInt
	// Precision returns the absolute precision of this element.
	Precision() math.ExtInt
	// ValUnit decomposes x as u * π^v with u a unit, returning (v, u).  This
	// panics on zero.
	ValUnit() (int64, Operand)
	// InverseOfUnit computes x⁻¹, failing when x is not a unit.
	InverseOfUnit() (Operand, error)
	// ShiftUniformizer computes x * π^n.  Over a non-field ring a negative n
	// performs a truncating (floor) division by π^(-n).
	ShiftUniformizer(n int64) Operand
	// AddBigOh truncates this element to absolute precision n.
	AddBigOh(n int64) Operand
	// Lift reinterprets the stored representative as exact, discarding the
	// precision bound.  Iterations which gain precision faster than the
	// tracking rules can prove (notably Newton steps) lift their operands
	// before claiming the improved bound.
	Lift() Operand
}

// A Ring supplies the ambient structure shared by its elements: construction,
// the uniformizer, and the precision regime.
type Ring[E Element[E]] interface {
	// Zero returns the exact zero of this ring.
	Zero() E
	// One returns one, known to the ring's precision cap.
	One() E
	// FromInt64 constructs an element from a machine integer.
	FromInt64(val int64) E
	// FromBig constructs an element from a big integer.
	FromBig(val *big.Int) E
	// IsField reports whether this ring is a field.
	IsField() bool
	// FractionField returns the fraction field of this ring, or the ring
	// itself when it already is a field.  Elements of the fraction field and
	// of the ring share one representation and mix freely in arithmetic.
	FractionField() Ring[E]
	// UniformizerPow returns π^n.
	UniformizerPow(n int64) E
	// PrecisionCap returns the working precision of this ring.
	PrecisionCap() math.ExtInt
	// Ramification returns the ramification index of this ring over its
	// unramified base.
	Ramification() int64
	// ResidueCardinality returns the number of elements of the residue field.
	ResidueCardinality() *big.Int
	// Equals determines whether two ring descriptors denote the same ring.
	Equals(other Ring[E]) bool
}
