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

	"github.com/padiclabs/go-tate/pkg/ring"
)

// SPolynomial computes the Buchberger S-polynomial of two nonzero elements:
// with t the monomial-ideal lcm of the two leading terms,
//
//	(t // lt(f))*f - (t // lt(g))*g
//
// which cancels the leading terms against each other.
func SPolynomial[E ring.Element[E]](f, g *Element[E]) (*Element[E], error) {
	if !f.algebra.Compatible(g.algebra) {
		return nil, fmt.Errorf("%w: S-polynomial operands", ErrDomainMismatch)
	}
	//
	ltf, okf := f.LeadingTerm()
	ltg, okg := g.LeadingTerm()
	//
	if !okf || !okg {
		return nil, fmt.Errorf("%w: S-polynomial of a zero element", ErrZeroOperand)
	}
	//
	t := ltf.Lcm(ltg)
	//
	qf, err := t.Quo(ltf)
	if err != nil {
		return nil, err
	}
	//
	qg, err := t.Quo(ltg)
	if err != nil {
		return nil, err
	}
	//
	return f.MulTerm(qf).Sub(g.MulTerm(qg)), nil
}
