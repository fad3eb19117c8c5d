// Package form holds the submission model shared by the contact and
// checkout flows. A Submission is built per request and discarded after the
// response; nothing here is persisted.
package form

type PaymentMethod string

const (
	PaymentWireTransfer PaymentMethod = "WireTransfer"
	PaymentMonero       PaymentMethod = "Monero"
)

type PackageType string

const (
	PackageBasic    PackageType = "basic"
	PackageStandard PackageType = "standard"
	PackagePremium  PackageType = "premium"
)

func (p PackageType) Valid() bool {
	switch p {
	case PackageBasic, PackageStandard, PackagePremium:
		return true
	}
	return false
}

// Submission is the validated form payload. Contact fills Subject/Message,
// checkout fills Payment/Coupon/Feedback/Packagetype; the identity fields
// are common to both.
type Submission struct {
	Name         string
	Email        string
	Phone        string
	Organisation string

	Subject string
	Message string

	Payment     PaymentMethod
	Coupon      string
	Feedback    string
	Packagetype PackageType

	Theme string
}

// Amounts are the derived checkout prices: the configured USD tier price and
// its target-currency conversion. Both are zero when no exchange-rate key is
// configured or the fetch failed.
type Amounts struct {
	USD float64
	XMR float64
}
