// Package notify models outbound transactional email: which kind of message
// goes to whom, and the dispatcher that sends it off the request path.
package notify

import (
	"fmt"

	"webnebula-api/internal/domain/form"

	"github.com/google/uuid"
)

// Kind is the purpose-tag of a notification. It selects template, subject
// and recipient.
type Kind string

const (
	KindContactUser      Kind = "contact-user"
	KindContactOwner     Kind = "contact-owner"
	KindCheckoutTransfer Kind = "checkout-transfer"
	KindCheckoutMonero   Kind = "checkout-monero"
	KindCheckoutOwner    Kind = "checkout-owner"
)

// OwnerFacing reports whether the message goes to the site owner's mailbox
// rather than the submitter.
func (k Kind) OwnerFacing() bool {
	return k == KindContactOwner || k == KindCheckoutOwner
}

func (k Kind) Subject(organisation string) string {
	switch k {
	case KindContactUser:
		return "Thank you for contacting us!"
	case KindContactOwner:
		return fmt.Sprintf("New contact request from %s", organisation)
	case KindCheckoutTransfer:
		return fmt.Sprintf("Wire Transfer Payment Details for %s", organisation)
	case KindCheckoutMonero:
		return fmt.Sprintf("Monero Payment Details for %s", organisation)
	case KindCheckoutOwner:
		return "New Order has been made"
	}
	return ""
}

type Notification struct {
	ID         uuid.UUID
	Kind       Kind
	Submission form.Submission
	Amounts    form.Amounts
}

func New(kind Kind, sub form.Submission, amounts form.Amounts) Notification {
	return Notification{
		ID:         uuid.New(),
		Kind:       kind,
		Submission: sub,
		Amounts:    amounts,
	}
}
