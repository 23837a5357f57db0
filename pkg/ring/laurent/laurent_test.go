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
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/padiclabs/go-tate/pkg/util/math"
)

func Test_Laurent_Construct(t *testing.T) {
	F := New(8)
	x := series(F, 0, 1, 1)
	//
	checkSeriesValuation(t, x, 0)
	checkSeriesPrecision(t, x, math.NewExtInt(8))
	// leading zero coefficients move into the valuation
	checkSeriesValuation(t, series(F, 0, 0, 0, 5), 2)
	//
	if !F.Zero().IsZero() {
		t.Error("zero should report IsZero")
	}
	// coefficients beyond the cap are discarded
	long := series(F, 7, 1, 2, 3)
	checkSeriesEquals(t, long, F.UniformizerPow(7).AddBigOh(8))
}

func Test_Laurent_Arith(t *testing.T) {
	F := New(8)
	x := series(F, 0, 1, 1)  // 1 + t
	y := series(F, 0, 1, -1) // 1 - t
	//
	checkSeriesEquals(t, x.Add(y), F.FromInt64(2))
	checkSeriesEquals(t, x.Sub(x), F.Zero())
	// (1+t)(1-t) = 1 - t^2
	checkSeriesEquals(t, x.Mul(y), series(F, 0, 1, 0, -1))
	checkSeriesValuation(t, x.Mul(y), 0)
	// t^3 * t^2 = t^5
	checkSeriesEquals(t, F.UniformizerPow(3).Mul(F.UniformizerPow(2)), F.UniformizerPow(5))
}

func Test_Laurent_Inverse(t *testing.T) {
	F := New(8)
	x := series(F, 0, 1, 1) // 1 + t
	//
	inv, err := x.InverseOfUnit()
	if err != nil {
		t.Fatal(err)
	}
	// 1/(1+t) = 1 - t + t^2 - ...
	checkSeriesEquals(t, inv, series(F, 0, 1, -1, 1, -1, 1, -1, 1, -1))
	checkSeriesEquals(t, x.Mul(inv), F.One())
	// t is not a unit of F[[t]]
	if _, err := F.UniformizerPow(1).InverseOfUnit(); !errors.Is(err, ErrNotUnit) {
		t.Errorf("expected ErrNotUnit, got %v", err)
	}
	// ... but it is one of F((t))
	K := NewField(8)
	//
	inv, err = K.UniformizerPow(1).InverseOfUnit()
	if err != nil {
		t.Fatal(err)
	}
	//
	checkSeriesValuation(t, inv, -1)
}

func Test_Laurent_Shift(t *testing.T) {
	F := New(8)
	x := series(F, 0, 1, 1) // 1 + t
	//
	checkSeriesEquals(t, x.ShiftUniformizer(2), series(F, 2, 1, 1))
	// over F[[t]] a negative shift floors: (1+t) >> 1 = 1
	down := x.ShiftUniformizer(-1)
	checkSeriesEquals(t, down, F.One().AddBigOh(7))
	checkSeriesPrecision(t, down, math.NewExtInt(7))
	// over F((t)) nothing is lost
	K := NewField(8)
	exact := series(K, 0, 1, 1).ShiftUniformizer(-1)
	checkSeriesValuation(t, exact, -1)
}

func Test_Laurent_BigOh(t *testing.T) {
	F := New(8)
	x := series(F, 0, 1, 1, 1, 1)
	//
	checkSeriesEquals(t, x.AddBigOh(2), series(F, 0, 1, 1).AddBigOh(2))
	checkSeriesPrecision(t, x.AddBigOh(2), math.NewExtInt(2))
	//
	if !F.UniformizerPow(3).AddBigOh(2).IsZero() {
		t.Error("t^3 + O(t^2) should be zero")
	}
}

func Test_Laurent_Lift(t *testing.T) {
	F := New(8)
	x := series(F, 0, 1, 1).AddBigOh(1)
	//
	checkSeriesPrecision(t, x.Lift(), math.PosInfinity)
	checkSeriesEquals(t, x.Lift(), F.One())
}

// =========================================================================================

// series builds Σ coeffs[i]·t^(shift+i) from small signed integers.
func series(r *Ring, shift int64, coeffs ...int64) Element {
	elems := make([]fr.Element, len(coeffs))
	//
	for i, c := range coeffs {
		elems[i].SetInt64(c)
	}
	//
	return r.FromCoefficients(elems, shift)
}

func checkSeriesEquals(t *testing.T, got Element, want Element) {
	t.Helper()
	//
	if !got.Equals(want) {
		t.Errorf("got %s, wanted %s", got, want)
	}
}

func checkSeriesValuation(t *testing.T, x Element, val int64) {
	t.Helper()
	//
	if x.Valuation().Cmp(math.NewExtInt(val)) != 0 {
		t.Errorf("%s: expected valuation %d, got %s", x, val, x.Valuation())
	}
}

func checkSeriesPrecision(t *testing.T, x Element, prec math.ExtInt) {
	t.Helper()
	//
	if x.Precision().Cmp(prec) != 0 {
		t.Errorf("%s: expected precision %s, got %s", x, prec, x.Precision())
	}
}
