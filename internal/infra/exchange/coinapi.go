// Package exchange is the CoinAPI exchange-rate gateway.
package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"webnebula-api/internal/pkg/config"
	"webnebula-api/internal/pkg/errs"
)

type Client struct {
	http *http.Client
	cfg  config.ExchangeConfig
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http: &http.Client{Timeout: 10 * time.Second},
		cfg:  cfg.Exchange,
	}
}

// Enabled reports whether a provider API key is configured. Without one the
// checkout flow skips the fetch and prices degrade to zero.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

type rateResponse struct {
	Rate float64 `json:"rate"`
}

func (c *Client) Rate(ctx context.Context) (float64, error) {
	endpoint := fmt.Sprintf("%s/exchangerate/%s/%s", c.cfg.BaseURL, c.cfg.BaseCurrency, c.cfg.QuoteCurrency)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, errs.Wrap(err, "failed to build exchange rate request")
	}
	req.Header.Set("X-CoinAPI-Key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, errs.Wrap(err, "exchange rate request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errs.New("exchange rate provider returned status " + resp.Status)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, errs.Wrap(err, "failed to decode exchange rate response")
	}
	return body.Rate, nil
}
