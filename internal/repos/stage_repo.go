package repos

import (
	"autobroker/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StageRepo struct{ db *sqlx.DB }

func NewStageRepo(db *sqlx.DB) *StageRepo { return &StageRepo{db: db} }

func (r *StageRepo) Create(id, orderID, stageName, comments string, completed bool) error {
	_, err := r.db.Exec(`
	  INSERT INTO order_stages(id, order_id, stage_name, completed, comments, updated_date)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, id, orderID, stageName, completed, comments)
	return err
}

// Update saves the completed flag and comments, refreshing updated_date.
func (r *StageRepo) Update(id string, completed bool, comments string) error {
	_, err := r.db.Exec(`
	  UPDATE order_stages
	  SET completed = ?, comments = ?, updated_date = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, completed, comments, id)
	return err
}

func (r *StageRepo) Get(id string) (domain.OrderStage, error) {
	var s domain.OrderStage
	err := r.db.Get(&s, `
	  SELECT id, order_id, stage_name, completed, comments, updated_date
	  FROM order_stages WHERE id = ?
	`, id)
	return s, err
}

func (r *StageRepo) ListByOrder(orderID string) ([]domain.OrderStage, error) {
	var out []domain.OrderStage
	err := r.db.Select(&out, `
	  SELECT id, order_id, stage_name, completed, comments, updated_date
	  FROM order_stages
	  WHERE order_id = ?
	`, orderID)
	return out, err
}

// ListByOrderChrono returns the order's stages by last update, oldest first.
func (r *StageRepo) ListByOrderChrono(orderID string) ([]domain.OrderStage, error) {
	var out []domain.OrderStage
	err := r.db.Select(&out, `
	  SELECT id, order_id, stage_name, completed, comments, updated_date
	  FROM order_stages
	  WHERE order_id = ?
	  ORDER BY datetime(updated_date) ASC, id ASC
	`, orderID)
	return out, err
}
