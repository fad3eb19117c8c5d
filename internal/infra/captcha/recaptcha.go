// Package captcha is the reCAPTCHA siteverify gateway.
package captcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"webnebula-api/internal/pkg/config"
	"webnebula-api/internal/pkg/errs"
)

type Client struct {
	http *http.Client
	cfg  config.CaptchaConfig
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		http: &http.Client{Timeout: 10 * time.Second},
		cfg:  cfg.Captcha,
	}
}

type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the server secret and the client token to the provider and
// returns its success flag literally. Transport or decode failures are hard
// failures for the request, never a silent success.
func (c *Client) Verify(ctx context.Context, token string) (bool, error) {
	params := url.Values{}
	params.Set("secret", c.cfg.Secret)
	params.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.VerifyURL+"?"+params.Encode(), nil)
	if err != nil {
		return false, errs.Wrap(err, "failed to build siteverify request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, errs.Wrap(err, "siteverify request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, errs.New("siteverify returned status " + resp.Status)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, errs.Wrap(err, "failed to decode siteverify response")
	}
	return body.Success, nil
}
