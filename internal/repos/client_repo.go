package repos

import (
	"autobroker/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ClientRepo struct{ db *sqlx.DB }

func NewClientRepo(db *sqlx.DB) *ClientRepo { return &ClientRepo{db: db} }

// Create inserts a new client. registration_date is assigned by the database.
func (r *ClientRepo) Create(id, fullName, phone, email, telegram string) error {
	_, err := r.db.Exec(`
	  INSERT INTO clients(id, full_name, phone, email, telegram)
	  VALUES(?, ?, ?, ?, ?)
	`, id, fullName, phone, email, telegram)
	return err
}

func (r *ClientRepo) Get(id string) (domain.Client, error) {
	var c domain.Client
	err := r.db.Get(&c, `
	  SELECT id, full_name, phone, email, telegram, registration_date
	  FROM clients WHERE id = ?
	`, id)
	return c, err
}

func (r *ClientRepo) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM clients WHERE id = ?`, id)
	return err
}
