package forms

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"autobroker/internal/validate"
)

// OrderForm is the order intake: the desired vehicle and its constraints.
// Raw year/budget strings are kept for re-display on validation failure.
type OrderForm struct {
	DesiredModel string
	YearMinRaw   string
	YearMaxRaw   string
	BudgetRaw    string
	Wishes       string

	YearMin int
	YearMax int
	Budget  decimal.Decimal

	Errors map[string]string
}

func ParseOrderForm(c *fiber.Ctx) *OrderForm {
	return &OrderForm{
		DesiredModel: c.FormValue("desired_model"),
		YearMinRaw:   c.FormValue("year_min"),
		YearMaxRaw:   c.FormValue("year_max"),
		BudgetRaw:    c.FormValue("budget_max"),
		Wishes:       c.FormValue("wishes"),
		Errors:       map[string]string{},
	}
}

// Valid checks each field against its model constraint. There is no check
// that YearMin <= YearMax; submissions with an inverted range are accepted.
func (f *OrderForm) Valid() bool {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	if v, ok := validate.Text(f.DesiredModel, 100); ok {
		f.DesiredModel = v
	} else {
		f.Errors["desired_model"] = msgRequired
	}
	if v, ok := validate.Year(f.YearMinRaw); ok {
		f.YearMin = v
	} else {
		f.Errors["year_min"] = "Год должен быть в диапазоне 1990–2030"
	}
	if v, ok := validate.Year(f.YearMaxRaw); ok {
		f.YearMax = v
	} else {
		f.Errors["year_max"] = "Год должен быть в диапазоне 1990–2030"
	}
	if v, ok := validate.Budget(f.BudgetRaw); ok {
		f.Budget = v
	} else {
		f.Errors["budget_max"] = "Укажите корректную сумму"
	}
	return len(f.Errors) == 0
}
