package handlers

import "github.com/gofiber/fiber/v2"

// PageHandler serves the static informational pages.
type PageHandler struct{}

func (h *PageHandler) About(c *fiber.Ctx) error {
	return render(c, "about", nil)
}

func (h *PageHandler) Contacts(c *fiber.Ctx) error {
	return render(c, "contacts", nil)
}
