package domain

import "github.com/shopspring/decimal"

// Order statuses.
const (
	StatusNew        = "new"
	StatusInProgress = "in_progress"
	StatusSearching  = "searching"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// StatusLabels maps order statuses to their display names.
var StatusLabels = map[string]string{
	StatusNew:        "Новая",
	StatusInProgress: "В работе",
	StatusSearching:  "На подборе",
	StatusCompleted:  "Выполнена",
	StatusCancelled:  "Отменена",
}

func ValidStatus(s string) bool { _, ok := StatusLabels[s]; return ok }

// Year bounds accepted for a desired vehicle.
const (
	YearMin = 1990
	YearMax = 2030
)

// Order is a single vehicle request submitted by a client.
type Order struct {
	ID           string          `db:"id"`
	ClientID     string          `db:"client_id"`
	ManagerID    *string         `db:"manager_id"`
	DesiredModel string          `db:"desired_model"`
	YearMin      int             `db:"year_min"`
	YearMax      int             `db:"year_max"`
	BudgetMax    decimal.Decimal `db:"budget_max"`
	Wishes       string          `db:"wishes"`
	Status       string          `db:"status"`
	CreatedDate  string          `db:"created_date"`
}

func (o Order) StatusLabel() string { return StatusLabels[o.Status] }

// ManagerRef returns the assigned manager id or "" when unassigned.
func (o Order) ManagerRef() string {
	if o.ManagerID == nil {
		return ""
	}
	return *o.ManagerID
}
