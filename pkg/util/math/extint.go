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
package math

import "fmt"

const notAnInfinity = 0
const negativeInfinity = 1
const positiveInfinity = 2

// PosInfinity represents positive infinity.
var PosInfinity = ExtInt{0, positiveInfinity}

// NegInfinity represents negative infinity.
var NegInfinity = ExtInt{0, negativeInfinity}

// ExtInt represents an integer extended with negative and positive infinity.
// Valuations and absolute precisions are drawn from this type: an exact
// quantity has precision positive infinity, whilst everything else is finite.
type ExtInt struct {
	// value of this integer, ignored when sign signals a form of infinity.
	val int64
	// sign indicates whether we are not an infinity, or are negative infinity
	// or positive infinity.
	sign uint8
}

// NewExtInt constructs a finite extended integer.
func NewExtInt(val int64) ExtInt {
	return ExtInt{val, notAnInfinity}
}

// Add two (potentially infinite) integers together.  Adding two infinities of
// opposite sign is undefined and panics.
func (p ExtInt) Add(other ExtInt) ExtInt {
	switch {
	case p.sign == notAnInfinity && other.sign == notAnInfinity:
		return ExtInt{p.val + other.val, notAnInfinity}
	case p.sign == notAnInfinity:
		return other
	case other.sign == notAnInfinity || p.sign == other.sign:
		return p
	default:
		panic("cannot add infinities of opposite sign")
	}
}

// AddInt64 adds a finite integer to this (potentially infinite) integer.
func (p ExtInt) AddInt64(other int64) ExtInt {
	if p.sign == notAnInfinity {
		return ExtInt{p.val + other, notAnInfinity}
	}
	//
	return p
}

// Sub subtracts a (potentially infinite) value from this (potentially
// infinite) value.
func (p ExtInt) Sub(other ExtInt) ExtInt {
	return p.Add(other.Negate())
}

// Cmp performs a comparison of two (potentially infinite) integer values.
func (p ExtInt) Cmp(o ExtInt) int {
	switch {
	case p.sign == notAnInfinity && o.sign == notAnInfinity:
		switch {
		case p.val < o.val:
			return -1
		case p.val > o.val:
			return 1
		default:
			return 0
		}
	case p.sign == o.sign:
		return 0
	case p.sign == negativeInfinity || o.sign == positiveInfinity:
		return -1
	default:
		return 1
	}
}

// CmpInt64 compares a potentially infinite integer value against a finite
// integer value.
func (p ExtInt) CmpInt64(other int64) int {
	return p.Cmp(NewExtInt(other))
}

// Int64 converts a potentially infinite integer into a finite value.  This
// will panic if this value is an infinity.
func (p ExtInt) Int64() int64 {
	if p.sign != notAnInfinity {
		panic("cannot cast infinity into an int64")
	}
	//
	return p.val
}

// IsFinite returns true if this represents a finite integer value.
func (p ExtInt) IsFinite() bool {
	return p.sign == notAnInfinity
}

// Min determines the least of two values.
func (p ExtInt) Min(o ExtInt) ExtInt {
	if p.Cmp(o) <= 0 {
		return p
	}
	//
	return o
}

// Max determines the greatest of two values.
func (p ExtInt) Max(o ExtInt) ExtInt {
	if p.Cmp(o) >= 0 {
		return p
	}
	//
	return o
}

// MinInt64 determines the least of this value and a finite value, as a finite
// value.  This will panic if this value is negative infinity.
func (p ExtInt) MinInt64(other int64) int64 {
	if p.sign == notAnInfinity && p.val < other {
		return p.val
	} else if p.sign == negativeInfinity {
		panic("cannot cast negative infinity into an int64")
	}
	//
	return other
}

// Negate this (potentially infinite) integer.
func (p ExtInt) Negate() ExtInt {
	switch p.sign {
	case positiveInfinity:
		return NegInfinity
	case negativeInfinity:
		return PosInfinity
	default:
		return ExtInt{-p.val, notAnInfinity}
	}
}

func (p ExtInt) String() string {
	switch p.sign {
	case negativeInfinity:
		return "-∞"
	case positiveInfinity:
		return "+∞"
	default:
		return fmt.Sprintf("%d", p.val)
	}
}
