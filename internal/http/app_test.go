package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"autobroker/internal/config"
	"autobroker/internal/http/handlers"
	applog "autobroker/internal/log"
	"autobroker/internal/repos"
	"autobroker/internal/services"
)

// newTestApp wires the public routes against an in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:", MediaDir: t.TempDir()}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	staffRepo := repos.NewStaffRepo(db)
	authSvc := &services.AuthService{Staff: staffRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Что-то пошло не так. Попробуйте еще раз.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Что-то пошло не так. Попробуйте еще раз.")
			}
			return nil
		},
	})
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(db, cfg)
	app.Get("/", deps.HomeHandler.Home)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/contacts", deps.PageHandler.Contacts)
	app.Get("/catalog", deps.CatalogHandler.List)
	app.Get("/car/:id", deps.CatalogHandler.Detail)
	app.Get("/create-order", deps.OrderHandler.CreateForm)
	app.Post("/create-order", deps.OrderHandler.Create)
	app.Get("/order/:id", deps.OrderHandler.Detail)
	app.Get("/order/:id/tracking", deps.OrderHandler.Track)
	app.Get("/order/:id/review", deps.ReviewHandler.Form)
	app.Post("/order/:id/review", deps.ReviewHandler.Submit)
	app.Get("/login", authH.LoginForm)
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Страница не найдена"})
	})

	return app, db
}

func newGet(path string) *http.Request {
	return httptest.NewRequest("GET", path, nil)
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken fetches a CSRF cookie by loading the login form.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/login", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

// postForm submits a form-encoded POST with the CSRF token attached.
func postForm(t *testing.T, app *fiber.App, tok, path string, fields map[string]string) *http.Response {
	t.Helper()
	vals := url.Values{"csrf": {tok}}
	for k, v := range fields {
		vals.Set(k, v)
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(vals.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}
