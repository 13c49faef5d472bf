package repos

import (
	"autobroker/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ManagerRepo struct{ db *sqlx.DB }

func NewManagerRepo(db *sqlx.DB) *ManagerRepo { return &ManagerRepo{db: db} }

func (r *ManagerRepo) List() ([]domain.Manager, error) {
	var out []domain.Manager
	err := r.db.Select(&out, `
	  SELECT id, full_name, phone, email, active
	  FROM managers
	  ORDER BY full_name
	`)
	return out, err
}

func (r *ManagerRepo) ListActive() ([]domain.Manager, error) {
	var out []domain.Manager
	err := r.db.Select(&out, `
	  SELECT id, full_name, phone, email, active
	  FROM managers
	  WHERE active = 1
	  ORDER BY full_name
	`)
	return out, err
}

func (r *ManagerRepo) Create(id, fullName, phone, email string) error {
	_, err := r.db.Exec(`
	  INSERT INTO managers(id, full_name, phone, email, active)
	  VALUES(?, ?, ?, ?, 1)
	`, id, fullName, phone, email)
	return err
}

func (r *ManagerRepo) SetActive(id string, active bool) error {
	_, err := r.db.Exec(`UPDATE managers SET active = ? WHERE id = ?`, active, id)
	return err
}

func (r *ManagerRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM managers WHERE id = ?`, id)
	return err
}
