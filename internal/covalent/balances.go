package covalent

import (
	"context"
	"fmt"
	"net/url"

	"github.com/stablescan/walletstat/internal/domain"
)

// FetchBalances retrieves the token balances held by address on the
// given network, quoted in USD, with NFTs and spam tokens filtered out
// upstream. A nil item slice means the wallet holds nothing there.
func (c *Client) FetchBalances(ctx context.Context, network domain.Network, address string) ([]BalanceItem, error) {
	path := fmt.Sprintf("/v1/%s/address/%s/balances_v2/?quote-currency=usd&no-nft=true&no-spam=true",
		url.PathEscape(string(network)), url.PathEscape(address))

	var envelope balancesEnvelope
	if err := c.getJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetching balances on %s: %w", network, err)
	}
	if envelope.Error {
		return nil, fmt.Errorf("fetching balances on %s: upstream error: %s", network, envelope.ErrorMessage)
	}

	return envelope.Data.Items, nil
}
