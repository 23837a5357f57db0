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

// MonomialOrder is a classical total order over monomial exponent vectors,
// used to break valuation ties in the term order of an algebra.
type MonomialOrder interface {
	// Name returns the conventional name of this order.
	Name() string
	// Compare returns 1 when a is greater than b under this order, -1 when it
	// is smaller and 0 when the two coincide.
	Compare(a, b Exponent) int
}

// Lex is the lexicographic order.
var Lex MonomialOrder = lexOrder{}

// Deglex is the degree lexicographic order.
var Deglex MonomialOrder = deglexOrder{}

// Degrevlex is the degree reverse lexicographic order.
var Degrevlex MonomialOrder = degrevlexOrder{}

// OrderByName resolves a conventional order name, reporting failure for
// anything unrecognised.
func OrderByName(name string) (MonomialOrder, bool) {
	switch name {
	case "lex":
		return Lex, true
	case "deglex":
		return Deglex, true
	case "degrevlex":
		return Degrevlex, true
	default:
		return nil, false
	}
}

type lexOrder struct{}

func (lexOrder) Name() string { return "lex" }

func (lexOrder) Compare(a, b Exponent) int {
	for i := range a {
		if a[i] != b[i] {
			if a[i] > b[i] {
				return 1
			}
			//
			return -1
		}
	}
	//
	return 0
}

type deglexOrder struct{}

func (deglexOrder) Name() string { return "deglex" }

func (deglexOrder) Compare(a, b Exponent) int {
	if c := cmpDegree(a, b); c != 0 {
		return c
	}
	//
	return Lex.Compare(a, b)
}

type degrevlexOrder struct{}

func (degrevlexOrder) Name() string { return "degrevlex" }

func (degrevlexOrder) Compare(a, b Exponent) int {
	if c := cmpDegree(a, b); c != 0 {
		return c
	}
	// At equal degree, the smaller entry in the last differing variable wins.
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return 1
			}
			//
			return -1
		}
	}
	//
	return 0
}

func cmpDegree(a, b Exponent) int {
	da, db := a.Degree(), b.Degree()
	//
	switch {
	case da > db:
		return 1
	case da < db:
		return -1
	default:
		return 0
	}
}
