package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodCard          PaymentMethod = "card"
	PaymentMethodOnlineBanking PaymentMethod = "online_banking"
	PaymentMethodEWallet       PaymentMethod = "e_wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodOnlineBanking, PaymentMethodEWallet:
		return true
	}
	return false
}

// Payment is the deposit transaction tied 1:1 to a booking at creation
// time. No gateway integration exists, so status is fixed to completed when
// the record is created.
type Payment struct {
	ID            string        `db:"id"`
	BookingID     string        `db:"booking_id"`
	Amount        float64       `db:"amount"`
	Method        PaymentMethod `db:"method"`
	Status        PaymentStatus `db:"status"`
	TransactionID string        `db:"transaction_id"`
	CreatedAt     time.Time     `db:"created_at"`
}
