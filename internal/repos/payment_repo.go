package repos

import (
	"autobroker/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PaymentRepo struct{ db *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) Create(id, orderID, paymentType string, amount decimal.Decimal) error {
	_, err := r.db.Exec(`
	  INSERT INTO payments(id, order_id, payment_type, amount, paid, payment_date)
	  VALUES(?, ?, ?, ?, 0, NULL)
	`, id, orderID, paymentType, amount)
	return err
}

// MarkPaid flags the payment as paid and stamps payment_date.
func (r *PaymentRepo) MarkPaid(id string) error {
	_, err := r.db.Exec(`
	  UPDATE payments
	  SET paid = 1, payment_date = CURRENT_TIMESTAMP
	  WHERE id = ? AND paid = 0
	`, id)
	return err
}

func (r *PaymentRepo) ListByOrder(orderID string) ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.db.Select(&out, `
	  SELECT id, order_id, payment_type, amount, paid, payment_date
	  FROM payments
	  WHERE order_id = ?
	`, orderID)
	return out, err
}
