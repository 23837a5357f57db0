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

	"github.com/padiclabs/go-tate/pkg/ring"
)

// QuoRem divides this element by an ordered list of divisors, producing one
// quotient per divisor and a remainder such that
//
//	x = Σ quotient[i]*divisor[i] + remainder
//
// and no term of the remainder is divisible by any divisor's leading term.
// The dividend is truncated to the algebra's precision cap up front; every
// reduction step either removes the leading term or raises the leading
// valuation, so the loop is bounded by the cap.
func (x *Element[E]) QuoRem(divisors ...*Element[E]) ([]*Element[E], *Element[E], error) {
	var (
		a     = x.algebra
		leads = make([]Term[E], len(divisors))
	)
	//
	for i, g := range divisors {
		if !a.Compatible(g.algebra) {
			return nil, nil, fmt.Errorf("%w: divisor %d", ErrDomainMismatch, i)
		}
		//
		lt, ok := g.LeadingTerm()
		//
		if !ok {
			return nil, nil, fmt.Errorf("%w: divisor %d is zero", ErrZeroOperand, i)
		}
		//
		leads[i] = lt
	}
	//
	var (
		work  = newWorkspace(x.AddBigOh(a.cap))
		quots = make([][]Term[E], len(divisors))
		rem   []Term[E]
		steps uint
	)
	//
	for {
		lt, ok := work.leadingTerm()
		//
		if !ok {
			break
		}
		//
		steps++
		reduced := false
		//
		for i, glt := range leads {
			if !lt.IsDivisibleBy(glt, false) {
				continue
			}
			//
			q, err := lt.Quo(glt)
			if err != nil {
				return nil, nil, err
			}
			// Cancel q*divisor against the running dividend
			work.remove(lt.exponent)
			//
			for _, s := range divisors[i].coeffs {
				if !s.exponent.Equals(glt.exponent) {
					work.subtract(q.Mul(s))
				}
			}
			//
			quots[i] = append(quots[i], q)
			reduced = true
			//
			break
		}
		//
		if !reduced {
			work.remove(lt.exponent)
			rem = append(rem, lt)
		}
	}
	//
	log.Debug("series division finished after ", steps, " reduction steps")
	//
	var (
		bound     = x.prec.Min(a.capExt())
		quotients = make([]*Element[E], len(divisors))
	)
	//
	for i, terms := range quots {
		quotients[i] = a.newElement(terms, bound)
	}
	//
	return quotients, a.newElement(rem, bound), nil
}

// Quo returns the quotient view of the single-divisor division.
func (x *Element[E]) Quo(g *Element[E]) (*Element[E], error) {
	quotients, _, err := x.QuoRem(g)
	if err != nil {
		return nil, err
	}
	//
	return quotients[0], nil
}

// Mod returns the remainder view of the single-divisor division.
func (x *Element[E]) Mod(g *Element[E]) (*Element[E], error) {
	_, rem, err := x.QuoRem(g)
	//
	return rem, err
}

// Reduce returns the remainder of this element modulo a generating set,
// which is assumed to be a Gröbner basis of the ideal it generates.
func (x *Element[E]) Reduce(generators []*Element[E]) (*Element[E], error) {
	_, rem, err := x.QuoRem(generators...)
	//
	return rem, err
}

// workspace is the running dividend of a division: the one place where terms
// are manipulated as a raw mutable mapping rather than as immutable elements.
type workspace[E ring.Element[E]] struct {
	algebra *Algebra[E]
	terms   map[string]Term[E]
}

func newWorkspace[E ring.Element[E]](x *Element[E]) *workspace[E] {
	terms := make(map[string]Term[E], len(x.coeffs))
	//
	for key, t := range x.coeffs {
		terms[key] = t
	}
	//
	return &workspace[E]{x.algebra, terms}
}

// leadingTerm scans for the greatest live term below the precision cap.
func (w *workspace[E]) leadingTerm() (Term[E], bool) {
	var (
		lead  Term[E]
		found bool
	)
	//
	for _, t := range w.terms {
		if t.Valuation().CmpInt64(w.algebra.cap) >= 0 {
			continue
		}
		//
		if !found || t.Cmp(lead) > 0 {
			lead, found = t, true
		}
	}
	//
	return lead, found
}

// subtract removes a single term-product from the running dividend.
func (w *workspace[E]) subtract(t Term[E]) {
	if t.coeff.IsZero() {
		return
	}
	//
	key := t.exponent.Key()
	//
	if prev, ok := w.terms[key]; ok {
		c := prev.coeff.Sub(t.coeff)
		//
		if c.IsZero() {
			delete(w.terms, key)
		} else {
			w.terms[key] = Term[E]{w.algebra, c, prev.exponent}
		}
		//
		return
	}
	//
	w.terms[key] = Term[E]{w.algebra, t.coeff.Neg(), t.exponent.Clone()}
}

// remove drops the term with the given exponent.
func (w *workspace[E]) remove(e Exponent) {
	delete(w.terms, e.Key())
}
