package handlers

import (
	applog "autobroker/internal/log"
	"autobroker/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireStaff guards the record-management pages behind a staff session.
func RequireStaff(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies("sid")
		if sid == "" {
			return c.Redirect("/login")
		}
		st, err := auth.CurrentStaff(sid)
		if err != nil || st == nil {
			applog.Security(c, "access.denied.admin", map[string]any{"sid": sid})
			return c.Redirect("/login")
		}
		c.Locals("staff", st)
		c.Locals("staff_id", st.ID)
		return c.Next()
	}
}
