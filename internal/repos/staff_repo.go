package repos

import (
	"autobroker/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StaffRepo struct{ db *sqlx.DB }

func NewStaffRepo(db *sqlx.DB) *StaffRepo { return &StaffRepo{db: db} }

func (r *StaffRepo) ByEmail(email string) (*domain.Staff, error) {
	var s domain.Staff
	err := r.db.Get(&s, `SELECT id,email,name,password_hash FROM staff WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepo) BindSession(sid, staffID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO sessions(id, staff_id, last_seen)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(id) DO UPDATE SET staff_id=excluded.staff_id, last_seen=CURRENT_TIMESTAMP
	`, sid, staffID)
	return err
}

func (r *StaffRepo) SessionStaff(sid string) (*domain.Staff, error) {
	var s domain.Staff
	err := r.db.Get(&s, `
	  SELECT st.id, st.email, st.name, st.password_hash
	  FROM sessions s
	  JOIN staff st ON st.id = s.staff_id
	  WHERE s.id = ?
	`, sid)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StaffRepo) UnbindSession(sid string) error {
	_, err := r.db.Exec(`UPDATE sessions SET staff_id=NULL, last_seen=CURRENT_TIMESTAMP WHERE id=?`, sid)
	return err
}
