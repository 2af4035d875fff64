package service

import (
	"croupier/config"
)

// ValidateBet checks a raw wager before any state is touched.
//
// Amount rule: valid if it is the all-in marker or parses to a number
// strictly greater than zero. Selector rule: valid if the stringified
// selector is a key of the betting options mapping. The result is the AND
// of both rules; validation never mutates anything.
func ValidateBet(rawAmount, rawSelector string, options config.BettingOptions) bool {
	// Positive form on purpose: a value that is not comparable, such as NaN,
	// must fail the rule rather than slip past a negated check.
	stake, ok := ParseStake(rawAmount)
	validAmount := ok && (stake.AllIn || stake.Amount > 0)

	// Selector lookup compares as a string, so numeric and string forms of
	// the same key are equivalent.
	validSelector := options.Has(rawSelector)

	return validAmount && validSelector
}
