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

import "errors"

// ErrDomainMismatch signals operands drawn from incompatible algebras, or a
// restriction that would enlarge rather than shrink the convergence domain.
var ErrDomainMismatch = errors.New("incompatible algebras")

// ErrNonExactDivision signals a term or element quotient which does not exist
// exactly.
var ErrNonExactDivision = errors.New("no exact quotient")

// ErrNotInvertible signals an inversion request on a non-unit.
var ErrNotInvertible = errors.New("element is not invertible")

// ErrZeroOperand signals a zero operand where a nonzero one is required.
var ErrZeroOperand = errors.New("operand is zero")

// ErrResidueUnsupported signals a residue computation outside the unit
// polydisc.
var ErrResidueUnsupported = errors.New("residue only defined for zero log-radii")
