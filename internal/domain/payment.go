package domain

import "github.com/shopspring/decimal"

// Payment types.
const (
	PaymentDeposit  = "deposit"
	PaymentAuction  = "auction"
	PaymentShipping = "shipping"
	PaymentCustoms  = "customs"
	PaymentFinal    = "final"
)

var PaymentTypeLabels = map[string]string{
	PaymentDeposit:  "Предоплата",
	PaymentAuction:  "Оплата аукциона",
	PaymentShipping: "Оплата доставки",
	PaymentCustoms:  "Оплата пошлины",
	PaymentFinal:    "Финальный расчет",
}

func ValidPaymentType(s string) bool { _, ok := PaymentTypeLabels[s]; return ok }

// Payment is a billed amount tied to an order. PaymentDate is set when the
// payment is marked paid.
type Payment struct {
	ID          string          `db:"id"`
	OrderID     string          `db:"order_id"`
	PaymentType string          `db:"payment_type"`
	Amount      decimal.Decimal `db:"amount"`
	Paid        bool            `db:"paid"`
	PaymentDate *string         `db:"payment_date"`
}

func (p Payment) TypeLabel() string { return PaymentTypeLabels[p.PaymentType] }
