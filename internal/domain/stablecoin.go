package domain

import (
	"regexp"
	"strings"
)

// defaultStableTickers is the allow-list of known stablecoin symbols.
// Unexported to prevent external mutation.
var defaultStableTickers = []string{
	"USDT", "USDC", "DAI", "BUSD", "TUSD", "USDP",
	"GUSD", "FRAX", "LUSD", "USDD", "PYUSD", "FDUSD",
}

// DefaultStableTickers returns the built-in stablecoin ticker allow-list.
func DefaultStableTickers() []string {
	out := make([]string, len(defaultStableTickers))
	copy(out, defaultStableTickers)
	return out
}

// stableWordPattern matches "USD" or "STABLE" as whole words only, so
// "USD Coin" matches but "CUSTODY" does not.
var stableWordPattern = regexp.MustCompile(`\b(USD|STABLE)\b`)

// Classifier decides whether a token counts as a stablecoin, by ticker
// allow-list first and a name/symbol keyword heuristic second. It is a
// heuristic, not a registry lookup: false positives and negatives are
// expected and acceptable.
type Classifier struct {
	tickers map[string]bool
}

// NewClassifier creates a Classifier with the given ticker allow-list.
// Tickers are matched case-insensitively.
func NewClassifier(tickers []string) *Classifier {
	set := make(map[string]bool, len(tickers))
	for _, t := range tickers {
		set[strings.ToUpper(t)] = true
	}
	return &Classifier{tickers: set}
}

// DefaultClassifier creates a Classifier with the built-in allow-list.
func DefaultClassifier() *Classifier {
	return NewClassifier(defaultStableTickers)
}

// IsStable reports whether a token with the given ticker symbol and
// contract name is classified as a stablecoin. Missing values are
// treated as empty strings.
func (c *Classifier) IsStable(symbol, name string) bool {
	symbol = strings.ToUpper(symbol)
	name = strings.ToUpper(name)

	if c.tickers[symbol] {
		return true
	}
	return stableWordPattern.MatchString(symbol) || stableWordPattern.MatchString(name)
}
