// Package pricing resolves daily collateral prices. ysyBOLD prices off its
// ERC4626 share rate on-chain; everything else comes from the DefiLlama
// batchHistorical endpoint.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/url"

	"github.com/asymmetryfinance/usdaf-indexer/internal/adapter"
	"github.com/asymmetryfinance/usdaf-indexer/internal/domain"
	"github.com/asymmetryfinance/usdaf-indexer/internal/registry"
)

// DefaultBaseURL is the DefiLlama coins API endpoint
const DefaultBaseURL = "https://coins.llama.fi"

// searchWidth widens the price lookup around each requested timestamp
const searchWidth = "600"

//go:generate mockgen -source=pricing.go -destination=../mocks/pricing.go -package=mocks

// ShareRateReader reads an ERC4626 vault's convertToAssets on-chain
type ShareRateReader interface {
	ConvertToAssets(ctx context.Context, vault string, shares *big.Int) (*big.Int, error)
}

// Config is the slice of the protocol registry pricing needs
type Config interface {
	PriceCoins() []registry.PriceCoin
	YsyBoldVault() string
}

// Service fetches the per-collateral USD prices for a day
type Service struct {
	http    adapter.HTTPClient
	shares  ShareRateReader
	config  Config
	baseURL string
}

// NewService creates a pricing service; baseURL falls back to DefaultBaseURL
func NewService(http adapter.HTTPClient, shares ShareRateReader, config Config, baseURL string) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{http: http, shares: shares, config: config, baseURL: baseURL}
}

type batchHistoricalResponse struct {
	Coins map[string]struct {
		Symbol string `json:"symbol"`
		Prices []struct {
			Timestamp int64   `json:"timestamp"`
			Price     float64 `json:"price"`
		} `json:"prices"`
	} `json:"coins"`
}

// FetchDaily returns the price per collateral for the UTC day starting at
// day. DefiLlama coins are sampled at the day boundary and 24h before it,
// keeping the higher of the two; coins the provider omits report as zero.
func (s *Service) FetchDaily(ctx context.Context, day int64) (map[domain.Collateral]float64, error) {
	prices := make(map[domain.Collateral]float64)

	coins := s.config.PriceCoins()
	byCoin := make(map[string]domain.Collateral, len(coins))
	request := make(map[string][]int64, len(coins))
	for _, c := range coins {
		key := "coingecko:" + c.CoinID
		byCoin[key] = c.Collateral
		request[key] = []int64{day - 86400, day}
		prices[c.Collateral] = 0
	}

	if len(request) > 0 {
		coinsParam, err := json.Marshal(request)
		if err != nil {
			return nil, fmt.Errorf("failed to encode coins parameter: %w", err)
		}

		query := url.Values{}
		query.Set("coins", string(coinsParam))
		query.Set("searchWidth", searchWidth)
		endpoint := fmt.Sprintf("%s/batchHistorical?%s", s.baseURL, query.Encode())

		var resp batchHistoricalResponse
		if err := s.http.Get(ctx, endpoint, &resp); err != nil {
			return nil, fmt.Errorf("%w: batch historical prices: %v", domain.ErrProviderUnavailable, err)
		}

		for key, coin := range resp.Coins {
			col, ok := byCoin[key]
			if !ok {
				continue
			}
			for _, p := range coin.Prices {
				if p.Price > prices[col] {
					prices[col] = p.Price
				}
			}
		}
	}

	ysyBold, err := s.ysyBoldPrice(ctx)
	if err != nil {
		return nil, err
	}
	prices[domain.CollateralYsyBOLD] = ysyBold

	return prices, nil
}

// ysyBoldPrice reads the vault share rate: convertToAssets(1e18) / 1e18
func (s *Service) ysyBoldPrice(ctx context.Context) (float64, error) {
	one := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

	assets, err := s.shares.ConvertToAssets(ctx, s.config.YsyBoldVault(), one)
	if err != nil {
		return 0, fmt.Errorf("%w: ysyBOLD share rate: %v", domain.ErrProviderUnavailable, err)
	}

	rate := new(big.Float).Quo(new(big.Float).SetInt(assets), new(big.Float).SetInt(one))
	price, _ := rate.Float64()
	return price, nil
}
