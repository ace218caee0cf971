package portfolio

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/stablescan/walletstat/internal/covalent"
	"github.com/stablescan/walletstat/internal/domain"
)

// ErrEmptyAddress is returned when the wallet address is empty after trimming.
var ErrEmptyAddress = errors.New("address must not be empty")

// BalanceFetcher defines the subset of the balance API used by the Service.
type BalanceFetcher interface {
	FetchBalances(ctx context.Context, network domain.Network, address string) ([]covalent.BalanceItem, error)
}

// Service aggregates a wallet's balances across a fixed network list and
// computes the stablecoin share of the total USD value.
type Service struct {
	fetcher    BalanceFetcher
	networks   []domain.Network
	classifier *domain.Classifier
	delay      time.Duration
}

// NewService creates a new aggregator. The delay paces consecutive
// network requests to stay under the data provider's rate limit.
func NewService(fetcher BalanceFetcher, networks []domain.Network, classifier *domain.Classifier, delay time.Duration) *Service {
	return &Service{
		fetcher:    fetcher,
		networks:   networks,
		classifier: classifier,
		delay:      delay,
	}
}

// Breakdown queries every configured network in order and aggregates the
// wallet's holdings into total and stable USD sums. Individual network
// failures are logged and recorded as skipped; they never abort the
// aggregate, so a wallet with assets on only some networks still yields
// a meaningful partial result. Only input validation and context
// cancellation produce errors.
func (s *Service) Breakdown(ctx context.Context, address string) (domain.Breakdown, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return domain.Breakdown{}, ErrEmptyAddress
	}

	b := domain.Breakdown{
		Address: address,
		Total:   decimal.Zero,
		Stable:  decimal.Zero,
	}

	for i, network := range s.networks {
		if i > 0 && s.delay > 0 {
			select {
			case <-ctx.Done():
				return domain.Breakdown{}, ctx.Err()
			case <-time.After(s.delay):
			}
		}

		items, err := s.fetcher.FetchBalances(ctx, network, address)
		if err != nil {
			if ctx.Err() != nil {
				return domain.Breakdown{}, ctx.Err()
			}
			slog.Warn("skipping network", "network", network, "address", address, "error", err)
			b.Networks = append(b.Networks, domain.NetworkResult{
				Network:    network,
				Total:      decimal.Zero,
				Stable:     decimal.Zero,
				Skipped:    true,
				SkipReason: err.Error(),
			})
			continue
		}

		holdings := lo.FilterMap(items, func(item covalent.BalanceItem, _ int) (domain.Holding, bool) {
			value, ok := item.Quote.Value()
			if !ok {
				// Absent or non-numeric quote: excluded from both sums.
				return domain.Holding{}, false
			}
			return domain.Holding{
				Network: network,
				Symbol:  item.Symbol,
				Name:    item.Name,
				Value:   value,
				Stable:  s.classifier.IsStable(item.Symbol, item.Name),
			}, true
		})

		result := domain.NetworkResult{
			Network: network,
			Total: lo.Reduce(holdings, func(acc decimal.Decimal, h domain.Holding, _ int) decimal.Decimal {
				return acc.Add(h.Value)
			}, decimal.Zero),
			Stable: lo.Reduce(holdings, func(acc decimal.Decimal, h domain.Holding, _ int) decimal.Decimal {
				if !h.Stable {
					return acc
				}
				return acc.Add(h.Value)
			}, decimal.Zero),
		}

		b.Total = b.Total.Add(result.Total)
		b.Stable = b.Stable.Add(result.Stable)
		b.Networks = append(b.Networks, result)
		b.Holdings = append(b.Holdings, holdings...)
	}

	return b, nil
}

// StablePercentage returns just the aggregate slice of a breakdown:
// total and stable USD value plus the stable share in percent.
func (s *Service) StablePercentage(ctx context.Context, address string) (domain.Summary, error) {
	b, err := s.Breakdown(ctx, address)
	if err != nil {
		return domain.Summary{}, err
	}
	return b.Summary(), nil
}
