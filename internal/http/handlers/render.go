package handlers

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Flash is a one-shot notification carried across a redirect in a cookie,
// consumed on the next render.
type Flash struct {
	Level string // success | warning | error
	Text  string
}

func setFlash(c *fiber.Ctx, level, text string) {
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    level + "|" + url.QueryEscape(text),
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func takeFlash(c *fiber.Ctx) *Flash {
	raw := c.Cookies("flash")
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     "flash",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Expires:  time.Now().Add(-time.Hour),
	})
	level, enc, ok := strings.Cut(raw, "|")
	if !ok {
		return nil
	}
	text, err := url.QueryUnescape(enc)
	if err != nil {
		return nil
	}
	return &Flash{Level: level, Text: text}
}

func render(c *fiber.Ctx, tmpl string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	if st := c.Locals("staff"); st != nil {
		data["Staff"] = st
	}
	if _, ok := data["Flash"]; !ok {
		if fl := takeFlash(c); fl != nil {
			data["Flash"] = fl
		}
	}
	// Pick up the token the CSRF middleware put into Locals
	tok, _ := c.Locals("CSRFToken").(string)
	if tok == "" {
		tok = c.Cookies("csrf_")
	}
	if tok != "" {
		data["CSRFToken"] = tok
	}
	return c.Render(tmpl, data)
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msg})
}
