package domain

import "github.com/shopspring/decimal"

// Holding is one token position that contributed to a breakdown.
type Holding struct {
	Network Network         `json:"network"`
	Symbol  string          `json:"symbol"`
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Stable  bool            `json:"stable"`
}

// NetworkResult records the contribution of a single network to a
// breakdown. A failed network is kept with Skipped set rather than
// aborting the aggregate.
type NetworkResult struct {
	Network    Network         `json:"network"`
	Total      decimal.Decimal `json:"total"`
	Stable     decimal.Decimal `json:"stable"`
	Skipped    bool            `json:"skipped,omitempty"`
	SkipReason string          `json:"skipReason,omitempty"`
}

// Breakdown holds the full result of one aggregation run for a wallet.
// All values are ephemeral, computed fresh per invocation.
type Breakdown struct {
	Address  string          `json:"address"`
	Total    decimal.Decimal `json:"total"`
	Stable   decimal.Decimal `json:"stable"`
	Networks []NetworkResult `json:"networks"`
	Holdings []Holding       `json:"holdings"`
}

// Summary is the aggregate slice of a breakdown: total and stable USD
// value plus the stable share in percent.
type Summary struct {
	Total      decimal.Decimal `json:"total"`
	Stable     decimal.Decimal `json:"stable"`
	Percentage decimal.Decimal `json:"percentage"`
}

// Percentage returns the stable share of the total in percent, zero when
// the total is zero.
func (b Breakdown) Percentage() decimal.Decimal {
	return PercentOf(b.Stable, b.Total)
}

// Summary returns the aggregate view of the breakdown.
func (b Breakdown) Summary() Summary {
	return Summary{
		Total:      b.Total,
		Stable:     b.Stable,
		Percentage: b.Percentage(),
	}
}
