package covalent

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// balancesEnvelope represents the JSON response from the balances endpoint.
type balancesEnvelope struct {
	Data struct {
		Items []BalanceItem `json:"items"`
	} `json:"data"`
	Error        bool   `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// BalanceItem is a single token balance entry in a balances response.
type BalanceItem struct {
	Symbol string `json:"contract_ticker_symbol"`
	Name   string `json:"contract_name"`
	Quote  Quote  `json:"quote"`
}

// Quote is the current USD value of a held balance. The API reports it
// as a JSON number, but null, numeric strings and placeholders like
// "N/A" all occur in the wild. Anything that does not parse to a finite
// number leaves the quote invalid instead of failing the whole decode.
type Quote struct {
	value decimal.Decimal
	valid bool
}

// NewQuote creates a valid quote, mainly for tests and fakes.
func NewQuote(d decimal.Decimal) Quote {
	return Quote{value: d, valid: true}
}

// Value returns the quote amount and whether it was present and finite.
func (q Quote) Value() (decimal.Decimal, bool) {
	return q.value, q.valid
}

func (q *Quote) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return nil
	}

	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	q.value = decimal.NewFromFloat(f)
	q.valid = true
	return nil
}

func (q Quote) MarshalJSON() ([]byte, error) {
	if !q.valid {
		return []byte("null"), nil
	}
	return json.Marshal(q.value)
}
