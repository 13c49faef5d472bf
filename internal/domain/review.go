package domain

// Review is client feedback left after an order completes. At most one per order.
type Review struct {
	ID         string `db:"id"`
	ClientID   string `db:"client_id"`
	OrderID    string `db:"order_id"`
	Rating     int    `db:"rating"`
	ReviewText string `db:"review_text"`
	ReviewDate string `db:"review_date"`
	Photo      string `db:"photo"`
}
