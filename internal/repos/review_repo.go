package repos

import (
	"github.com/jmoiron/sqlx"
)

type ReviewRepo struct{ db *sqlx.DB }

func NewReviewRepo(db *sqlx.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// ReviewSummary is a review joined with its client's name, for listings.
type ReviewSummary struct {
	ID         string `db:"id"`
	ClientName string `db:"client_name"`
	OrderID    string `db:"order_id"`
	Rating     int    `db:"rating"`
	ReviewText string `db:"review_text"`
	ReviewDate string `db:"review_date"`
	Photo      string `db:"photo"`
}

// Create inserts a review. review_date is assigned by the database; the
// UNIQUE constraint on order_id rejects a second review for the same order.
func (r *ReviewRepo) Create(id, clientID, orderID string, rating int, reviewText, photo string) error {
	_, err := r.db.Exec(`
	  INSERT INTO reviews(id, client_id, order_id, rating, review_text, photo)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, id, clientID, orderID, rating, reviewText, photo)
	return err
}

// ExistsForOrder reports whether the order already has a review.
func (r *ReviewRepo) ExistsForOrder(orderID string) (bool, error) {
	var n int
	if err := r.db.Get(&n, `SELECT COUNT(*) FROM reviews WHERE order_id = ?`, orderID); err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListRecent returns the most recent reviews, newest first.
func (r *ReviewRepo) ListRecent(limit int) ([]ReviewSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []ReviewSummary
	err := r.db.Select(&out, `
	  SELECT rv.id, c.full_name AS client_name, rv.order_id, rv.rating,
	         rv.review_text, rv.review_date, rv.photo
	  FROM reviews rv
	  JOIN clients c ON c.id = rv.client_id
	  ORDER BY datetime(rv.review_date) DESC, rv.id DESC
	  LIMIT ?
	`, limit)
	return out, err
}
