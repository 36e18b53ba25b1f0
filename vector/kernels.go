// SPDX-License-Identifier: MIT
// Package: vector
//
// Purpose:
//   - Private decimal kernels shared by Magnitude, Normalized, Angle and the
//     area helpers: significant-digit division and square root.
//   - Precision is counted in SIGNIFICANT digits, so results keep their
//     accuracy at any exponent (1e-200 and 1e200 alike).

package vector

import (
	"math"

	"github.com/shopspring/decimal"
)

// newtonSteps refines the float64 seed (~15 digits) of sqrtSig; each step
// doubles the correct digits.
const newtonSteps = 3

// half is the exact factor 0.5.
var half = decimal.New(5, -1)

// order returns e such that |d| = m·10^e with m in [0.1, 1). d must be nonzero.
func order(d decimal.Decimal) int32 {
	return d.Exponent() + int32(d.NumDigits())
}

// divSig returns a/b with at least sig significant digits. b must be nonzero.
func divSig(a, b decimal.Decimal, sig int32) decimal.Decimal {
	if a.IsZero() {
		return decimal.Zero
	}
	// divide the mantissas, whose quotient lies in (0.1, 10), then restore the exponent
	oa, ob := order(a), order(b)

	return a.Shift(-oa).DivRound(b.Shift(-ob), sig).Shift(oa - ob)
}

// roundSig rounds d to sig significant digits.
func roundSig(d decimal.Decimal, sig int32) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(sig - order(d))
}

// sqrtSig returns sqrt(sq) to sig significant digits; sq must be >= 0.
// The exponent is split off before the float64 seed, so the float step never
// overflows or underflows, and Newton steps restore full decimal precision.
func sqrtSig(sq decimal.Decimal, sig int32) decimal.Decimal {
	if sq.Sign() <= 0 {
		return decimal.Zero
	}
	k := order(sq)
	if k%2 != 0 {
		k--
	}
	// sq·10^-k lies in [0.1, 10), comfortably inside float64 range
	seed := math.Sqrt(sq.Shift(-k).InexactFloat64())
	x := decimal.NewFromFloat(seed).Shift(k / 2)
	for i := 0; i < newtonSteps; i++ {
		x = x.Add(divSig(sq, x, sig+2)).Mul(half)
	}

	return roundSig(x, sig)
}
