package components

import (
	"log/slog"

	"webnebula-api/internal/infra/captcha"
	"webnebula-api/internal/infra/exchange"
	"webnebula-api/internal/infra/mail"
	"webnebula-api/internal/pkg/clock"
	"webnebula-api/internal/pkg/config"
	"webnebula-api/internal/pkg/csrf"
	"webnebula-api/internal/usecase/commands"
	"webnebula-api/internal/usecase/notify"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		clock.NewRealClock,
		newGuard,
		fx.Annotate(
			captcha.NewClient,
			fx.As(new(commands.CaptchaVerifier)),
		),
		fx.Annotate(
			exchange.NewClient,
			fx.As(new(commands.RateSource)),
		),
		fx.Annotate(
			mail.NewSMTPSender,
			fx.As(new(notify.Sender)),
		),
		newDispatcher,
	),
)

func newGuard(cfg config.Config, clk clock.Clock) *csrf.Guard {
	return csrf.NewGuard(cfg.Security.AllowedOrigins, cfg.Security.CSRFTokenTTL, clk)
}

func newDispatcher(lc fx.Lifecycle, sender notify.Sender, logger *slog.Logger) *notify.Dispatcher {
	d := notify.NewDispatcher(sender, logger)
	lc.Append(fx.Hook{
		// in-flight mail finishes before the process exits
		OnStop: d.Drain,
	})
	return d
}
