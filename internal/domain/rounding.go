package domain

import (
	"github.com/shopspring/decimal"
)

// Rounding mode names understood by Round. Any other name falls back to
// ties-to-even.
const (
	RoundingHalfUp   = "half-up"
	RoundingHalfDown = "half-down"
)

var decimalHalf = decimal.New(5, -1)

// Round normalizes value to the given number of fractional digits.
//
// half-up rounds an exact midpoint away from zero. half-down rounds an
// exact midpoint toward zero and every other value to the nearest scaled
// value, ties-to-even. Unrecognized modes use ties-to-even throughout.
// The computation is exact decimal arithmetic; repeated postings of the
// same value always round identically.
func Round(value decimal.Decimal, decimals int32, mode string) (decimal.Decimal, error) {
	if decimals < 0 {
		return decimal.Decimal{}, ErrNegativeScale
	}

	switch mode {
	case RoundingHalfUp:
		return value.Round(decimals), nil
	case RoundingHalfDown:
		shifted := value.Shift(decimals)
		frac := shifted.Sub(shifted.Truncate(0))
		if frac.Abs().Equal(decimalHalf) {
			return shifted.Truncate(0).Shift(-decimals), nil
		}
		return value.RoundBank(decimals), nil
	default:
		return value.RoundBank(decimals), nil
	}
}

// MidpointRule is the primitive tie-break rule behind a rounding mode, for
// callers that need the rule itself rather than a rounded value.
type MidpointRule struct {
	AwayFromZero bool
	TowardEven   bool
}

// ResolveRoundingMidpointRule maps a mode name to its midpoint rule.
func ResolveRoundingMidpointRule(mode string) MidpointRule {
	switch mode {
	case RoundingHalfUp:
		return MidpointRule{AwayFromZero: true}
	case RoundingHalfDown:
		return MidpointRule{}
	default:
		return MidpointRule{TowardEven: true}
	}
}

// ArithmeticSettings is the precision and rounding policy applied to
// ledger-bound monetary amounts. It is threaded explicitly into any
// operation that rounds, so tests can vary precision without touching
// shared state.
type ArithmeticSettings struct {
	DecimalScale int32
	RoundingMode string
}

// DefaultArithmeticSettings returns the system-wide ledger precision.
func DefaultArithmeticSettings() ArithmeticSettings {
	return ArithmeticSettings{
		DecimalScale: 4,
		RoundingMode: RoundingHalfUp,
	}
}

// Round applies the settings to a value.
func (s ArithmeticSettings) Round(value decimal.Decimal) (decimal.Decimal, error) {
	return Round(value, s.DecimalScale, s.RoundingMode)
}
