package service

import (
	"math"
	"strconv"
	"strings"
)

// AllInMarker is the literal a player sends to stake their entire balance.
const AllInMarker = "all"

// Stake is the parsed form of a raw wager amount: either the all-in marker
// or a concrete major-unit amount. Parsing happens once at the boundary so
// the rest of the workflow never touches the raw string again.
type Stake struct {
	AllIn  bool
	Amount float64 // major units, meaningful only when AllIn is false
}

// ParseStake parses a raw wager amount. It reports failure explicitly rather
// than letting a NaN flow through the workflow.
func ParseStake(raw string) (Stake, bool) {
	if strings.TrimSpace(raw) == AllInMarker {
		return Stake{AllIn: true}, true
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Stake{}, false
	}

	return Stake{Amount: amount}, true
}

// Normalize converts a stake into a canonical major-unit amount given the
// player's current balance in minor units. All-in resolves to the full
// balance; anything else is rounded to two decimal places, half away from
// zero at the hundredths digit.
func (s Stake) Normalize(balanceMinor int64) float64 {
	if s.AllIn {
		return float64(balanceMinor) / 100
	}
	return math.Round(s.Amount*100) / 100
}

// ToMinor converts a normalized major-unit amount to integer minor units.
func ToMinor(major float64) int64 {
	return int64(math.Round(major * 100))
}
