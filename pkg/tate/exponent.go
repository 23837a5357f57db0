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
	"encoding/binary"
	"fmt"
	"strings"
)

// Exponent is the exponent vector of a monomial, one non-negative entry per
// variable of the ambient algebra.
type Exponent []uint

// NewExponent constructs an exponent vector from the given entries.
func NewExponent(entries ...uint) Exponent {
	return Exponent(entries)
}

// Clone returns a fresh copy of this exponent vector.
func (e Exponent) Clone() Exponent {
	clone := make(Exponent, len(e))
	copy(clone, e)
	//
	return clone
}

// Degree returns the total degree, i.e. the sum of all entries.
func (e Exponent) Degree() uint {
	var sum uint
	//
	for _, n := range e {
		sum += n
	}
	//
	return sum
}

// Add computes the component-wise sum of two exponent vectors.
func (e Exponent) Add(o Exponent) Exponent {
	res := make(Exponent, len(e))
	//
	for i := range e {
		res[i] = e[i] + o[i]
	}
	//
	return res
}

// Sub computes the component-wise difference, reporting failure if any entry
// would go negative.
func (e Exponent) Sub(o Exponent) (Exponent, bool) {
	res := make(Exponent, len(e))
	//
	for i := range e {
		if e[i] < o[i] {
			return nil, false
		}
		//
		res[i] = e[i] - o[i]
	}
	//
	return res, true
}

// Min computes the component-wise minimum of two exponent vectors.
func (e Exponent) Min(o Exponent) Exponent {
	res := make(Exponent, len(e))
	//
	for i := range e {
		res[i] = min(e[i], o[i])
	}
	//
	return res
}

// Max computes the component-wise maximum of two exponent vectors.
func (e Exponent) Max(o Exponent) Exponent {
	res := make(Exponent, len(e))
	//
	for i := range e {
		res[i] = max(e[i], o[i])
	}
	//
	return res
}

// Divides determines whether the monomial with this exponent vector divides
// the monomial with the other, i.e. whether every entry of this vector is at
// most the corresponding entry of the other.
func (e Exponent) Divides(o Exponent) bool {
	for i := range e {
		if e[i] > o[i] {
			return false
		}
	}
	//
	return true
}

// Equals performs structural equality between two exponent vectors.
func (e Exponent) Equals(o Exponent) bool {
	if len(e) != len(o) {
		return false
	}
	//
	for i := range e {
		if e[i] != o[i] {
			return false
		}
	}
	//
	return true
}

// Key returns a compact encoding of this exponent vector suitable for use as
// a map key.
func (e Exponent) Key() string {
	var buf []byte
	//
	for _, n := range e {
		buf = binary.AppendUvarint(buf, uint64(n))
	}
	//
	return string(buf)
}

func (e Exponent) String() string {
	var buf strings.Builder
	//
	buf.WriteString("(")
	//
	for i, n := range e {
		if i != 0 {
			buf.WriteString(",")
		}
		//
		fmt.Fprintf(&buf, "%d", n)
	}
	//
	buf.WriteString(")")
	//
	return buf.String()
}
