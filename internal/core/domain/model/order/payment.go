package order

import (
	"fmt"
	"time"

	"campusdelivery/internal/core/domain/model/kernel"
	"campusdelivery/internal/pkg/errs"
)

type PaymentStatus string

const (
	PaymentInitiated PaymentStatus = "INITIATED"
	PaymentSuccess   PaymentStatus = "SUCCESS"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// ProviderCashOnDelivery marks settlements collected by the rider at the door.
const ProviderCashOnDelivery = "COD"

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch p := PaymentStatus(s); p {
	case PaymentInitiated, PaymentSuccess, PaymentFailed, PaymentRefunded:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%q is not a valid payment status", s))
	}
}

// Payment is the settlement record of an order.
type Payment struct {
	id          kernel.UUID
	orderID     kernel.UUID
	amount      kernel.Money
	status      PaymentStatus
	provider    string
	providerRef string
	createdAt   time.Time
}

// NewCashOnDeliveryPayment settles the order total as collected cash.
func NewCashOnDeliveryPayment(orderID kernel.UUID, amount kernel.Money) (*Payment, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return &Payment{
		id:        kernel.NewUUID(),
		orderID:   orderID,
		amount:    amount,
		status:    PaymentSuccess,
		provider:  ProviderCashOnDelivery,
		createdAt: time.Now().UTC(),
	}, nil
}

func (p *Payment) ID() kernel.UUID { return p.id }
func (p *Payment) OrderID() kernel.UUID { return p.orderID }
func (p *Payment) Amount() kernel.Money { return p.amount }
func (p *Payment) Status() PaymentStatus { return p.status }
func (p *Payment) Provider() string { return p.provider }
func (p *Payment) ProviderRef() string { return p.providerRef }
func (p *Payment) CreatedAt() time.Time { return p.createdAt }
