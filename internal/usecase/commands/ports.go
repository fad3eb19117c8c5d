package commands

import "context"

// Outbound ports implemented by the infra gateways.

// CaptchaVerifier confirms a client-side challenge token with the provider.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// RateSource yields the configured base→quote currency conversion rate.
// Enabled is false when no provider API key is configured; callers then skip
// the fetch entirely.
type RateSource interface {
	Enabled() bool
	Rate(ctx context.Context) (float64, error)
}
