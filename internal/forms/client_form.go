// Package forms holds the data-entry contracts of the public site. Each form
// keeps the submitted values for re-display and collects per-field error
// messages; a form with a non-empty Errors map rejects the whole submission.
package forms

import (
	"github.com/gofiber/fiber/v2"

	"autobroker/internal/validate"
)

const msgRequired = "Обязательное поле"

// ClientForm is the client intake: who is requesting the vehicle.
type ClientForm struct {
	FullName string
	Phone    string
	Email    string
	Telegram string

	Errors map[string]string
}

func ParseClientForm(c *fiber.Ctx) *ClientForm {
	return &ClientForm{
		FullName: c.FormValue("full_name"),
		Phone:    c.FormValue("phone"),
		Email:    c.FormValue("email"),
		Telegram: c.FormValue("telegram"),
		Errors:   map[string]string{},
	}
}

func (f *ClientForm) Valid() bool {
	if f.Errors == nil {
		f.Errors = map[string]string{}
	}
	if v, ok := validate.Text(f.FullName, 200); ok {
		f.FullName = v
	} else {
		f.Errors["full_name"] = msgRequired
	}
	if v, ok := validate.Phone(f.Phone); ok {
		f.Phone = v
	} else {
		f.Errors["phone"] = "Укажите корректный телефон"
	}
	if v, ok := validate.Email(f.Email); ok {
		f.Email = v
	} else {
		f.Errors["email"] = "Укажите корректный email"
	}
	if len(f.Telegram) > 100 {
		f.Errors["telegram"] = "Слишком длинное значение"
	}
	return len(f.Errors) == 0
}
