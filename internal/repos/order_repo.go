package repos

import (
	"autobroker/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// OrderSummary is an order row joined with its client's name, for listings.
type OrderSummary struct {
	ID           string          `db:"id"`
	ClientName   string          `db:"client_name"`
	DesiredModel string          `db:"desired_model"`
	YearMin      int             `db:"year_min"`
	YearMax      int             `db:"year_max"`
	BudgetMax    decimal.Decimal `db:"budget_max"`
	Status       string          `db:"status"`
	CreatedDate  string          `db:"created_date"`
}

func (s OrderSummary) StatusLabel() string { return domain.StatusLabels[s.Status] }

// Create inserts a new order. Status defaults to 'new' and created_date is
// assigned by the database.
func (r *OrderRepo) Create(id, clientID, desiredModel string, yearMin, yearMax int, budgetMax decimal.Decimal, wishes string) error {
	_, err := r.db.Exec(`
	  INSERT INTO orders(id, client_id, desired_model, year_min, year_max, budget_max, wishes)
	  VALUES(?, ?, ?, ?, ?, ?, ?)
	`, id, clientID, desiredModel, yearMin, yearMax, budgetMax, wishes)
	return err
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT id, client_id, manager_id, desired_model, year_min, year_max,
	         budget_max, wishes, status, created_date
	  FROM orders WHERE id = ?
	`, id)
	return o, err
}

// ListRecent returns the most recently created orders, newest first.
func (r *OrderRepo) ListRecent(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []OrderSummary
	err := r.db.Select(&out, `
	  SELECT o.id, c.full_name AS client_name, o.desired_model, o.year_min,
	         o.year_max, o.budget_max, o.status, o.created_date
	  FROM orders o
	  JOIN clients c ON c.id = o.client_id
	  ORDER BY datetime(o.created_date) DESC, o.id DESC
	  LIMIT ?
	`, limit)
	return out, err
}

func (r *OrderRepo) CountByStatus(status string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM orders WHERE status = ?`, status)
	return n, err
}

func (r *OrderRepo) UpdateStatus(id, status string) error {
	_, err := r.db.Exec(`UPDATE orders SET status = ? WHERE id = ?`, status, id)
	return err
}

// AssignManager sets or clears (managerID == "") the order's manager.
func (r *OrderRepo) AssignManager(id, managerID string) error {
	var arg any
	if managerID != "" {
		arg = managerID
	}
	_, err := r.db.Exec(`UPDATE orders SET manager_id = ? WHERE id = ?`, arg, id)
	return err
}

func (r *OrderRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	return err
}
