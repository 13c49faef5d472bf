package domain

// Staff is an internal account used to manage orders, cars, stages and payments.
type Staff struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	Name  string `db:"name"`
	Hash  string `db:"password_hash"`
}
