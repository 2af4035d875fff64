package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"
)

//go:embed betting_options.json
var bettingOptionsFS embed.FS

// BettingOptions maps a bet selector key (a wheel number, color, or range) to
// its payout multiplier table. Bet placement only uses it for key-existence
// checks; payout math belongs to round resolution.
type BettingOptions map[string][]float64

var (
	bettingOptions     BettingOptions
	bettingOptionsOnce sync.Once
)

// GetBettingOptions returns the betting options mapping loaded from the
// embedded configuration resource.
func GetBettingOptions() BettingOptions {
	bettingOptionsOnce.Do(func() {
		var err error
		bettingOptions, err = loadBettingOptions()
		if err != nil {
			panic(fmt.Sprintf("failed to load betting options: %v", err))
		}
	})
	return bettingOptions
}

func loadBettingOptions() (BettingOptions, error) {
	data, err := bettingOptionsFS.ReadFile("betting_options.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read betting options: %w", err)
	}

	var options BettingOptions
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, fmt.Errorf("failed to parse betting options: %w", err)
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("betting options mapping is empty")
	}

	return options, nil
}

// Has reports whether the given selector is a valid betting option.
func (o BettingOptions) Has(selector string) bool {
	_, ok := o[selector]
	return ok
}
