package domain

// Client is a person requesting a vehicle import.
type Client struct {
	ID               string `db:"id"`
	FullName         string `db:"full_name"`
	Phone            string `db:"phone"`
	Email            string `db:"email"`
	Telegram         string `db:"telegram"`
	RegistrationDate string `db:"registration_date"`
}

// Manager is a staff member handling orders.
type Manager struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Phone    string `db:"phone"`
	Email    string `db:"email"`
	Active   bool   `db:"active"`
}
