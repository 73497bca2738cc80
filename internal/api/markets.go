package api

import (
	"context"
	"fmt"
)

// GetMarkets fetches all markets.
func (c *Client) GetMarkets(ctx context.Context) ([]APIMarket, error) {
	var resp MarketsResponse
	if err := c.get(ctx, "/markets", &resp); err != nil {
		return nil, fmt.Errorf("get markets: %w", err)
	}

	return resp.Markets, nil
}

// GetMarket fetches a single market by id.
func (c *Client) GetMarket(ctx context.Context, id string) (*APIMarket, error) {
	var resp SingleMarketResponse
	if err := c.get(ctx, "/markets/"+id, &resp); err != nil {
		return nil, fmt.Errorf("get market %s: %w", id, err)
	}
	return &resp.Market, nil
}
