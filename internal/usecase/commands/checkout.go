package commands

import (
	"context"
	"log/slog"
	"math"

	"webnebula-api/internal/domain/form"
	"webnebula-api/internal/pkg/config"
	"webnebula-api/internal/pkg/errs"
	"webnebula-api/internal/usecase/notify"
)

type CheckoutCommands interface {
	Submit(ctx context.Context, sub form.Submission, captchaToken string) error
}

type checkoutCommandsImpl struct {
	formPipeline
	rates      RateSource
	dispatcher *notify.Dispatcher
	pricing    config.PricingConfig
	logger     *slog.Logger
}

func NewCheckoutCommands(
	captcha CaptchaVerifier,
	rates RateSource,
	dispatcher *notify.Dispatcher,
	cfg config.Config,
	logger *slog.Logger,
) CheckoutCommands {
	return &checkoutCommandsImpl{
		formPipeline: formPipeline{captcha: captcha},
		rates:        rates,
		dispatcher:   dispatcher,
		pricing:      cfg.Pricing,
		logger:       logger,
	}
}

// Submit runs the checkout flow: CAPTCHA, payment-method routing, optional
// exchange-rate derivation, then payment-instruction mail to the submitter
// and an order notice to the owner. Delivery is not awaited; the dispatcher
// logs each outcome.
func (uc *checkoutCommandsImpl) Submit(ctx context.Context, sub form.Submission, captchaToken string) error {
	if err := uc.verifyCaptcha(ctx, captchaToken); err != nil {
		return err
	}

	var userKind notify.Kind
	switch sub.Payment {
	case form.PaymentWireTransfer:
		userKind = notify.KindCheckoutTransfer
	case form.PaymentMonero:
		userKind = notify.KindCheckoutMonero
	default:
		return errs.ErrUnknownPaymentMethod
	}

	amounts := uc.deriveAmounts(ctx, sub.Packagetype)

	uc.dispatcher.Dispatch(notify.New(userKind, sub, amounts))
	uc.dispatcher.Dispatch(notify.New(notify.KindCheckoutOwner, sub, amounts))
	return nil
}

// deriveAmounts converts the tier price to the target currency. A missing
// API key or a failed fetch degrades both amounts to zero; the order still
// goes through.
func (uc *checkoutCommandsImpl) deriveAmounts(ctx context.Context, tier form.PackageType) form.Amounts {
	if !uc.rates.Enabled() {
		return form.Amounts{}
	}

	rate, err := uc.rates.Rate(ctx)
	if err != nil {
		uc.logger.Error("exchange rate fetch failed", "error", errs.Mark(err, errs.ErrExchangeUnavailable))
		return form.Amounts{}
	}

	usd := uc.priceFor(tier)
	if usd == 0 {
		return form.Amounts{}
	}
	return form.Amounts{
		USD: usd,
		XMR: math.Round(usd*rate*1e4) / 1e4,
	}
}

func (uc *checkoutCommandsImpl) priceFor(tier form.PackageType) float64 {
	switch tier {
	case form.PackageBasic:
		return uc.pricing.Basic
	case form.PackageStandard:
		return uc.pricing.Standard
	case form.PackagePremium:
		return uc.pricing.Premium
	}
	return 0
}
