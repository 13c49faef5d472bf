package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"autobroker/internal/config"
	"autobroker/internal/http/handlers"
	applog "autobroker/internal/log"
	"autobroker/internal/repos"
	"autobroker/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	// Staff auth wiring
	staffRepo := repos.NewStaffRepo(db)
	authSvc := &services.AuthService{Staff: staffRepo}
	authH := &handlers.AuthHandler{Auth: authSvc}

	// Templates & app
	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Что-то пошло не так. Попробуйте еще раз.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Что-то пошло не так. Попробуйте еще раз.")
			}
			return nil
		},
	})
	// Review/car photos go through multipart uploads
	app.Server().MaxRequestBodySize = 12 << 20

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			p := string(c.Request().URI().Path())
			return strings.HasPrefix(p, "/static/") || strings.HasPrefix(p, "/media/")
		},
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Проверка безопасности не пройдена. Обновите страницу и попробуйте еще раз."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- Static assets ----------
	mediaDir := cfg.MediaDir
	if !filepath.IsAbs(mediaDir) {
		if abs, err := filepath.Abs(mediaDir); err == nil {
			mediaDir = abs
		}
	}
	app.Static("/static", "./web/static")
	// Guarded media to avoid traversal
	app.Get("/media/*", func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security(c, "media.traversal.block", map[string]any{"path": path})
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(mediaDir, clean), true)
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(db, cfg)

	// Public pages
	app.Get("/", deps.HomeHandler.Home)
	app.Get("/about", deps.PageHandler.About)
	app.Get("/contacts", deps.PageHandler.Contacts)
	app.Get("/catalog", deps.CatalogHandler.List)
	app.Get("/car/:id", deps.CatalogHandler.Detail)

	// Order intake & client-facing order pages
	app.Get("/create-order", deps.OrderHandler.CreateForm)
	app.Post("/create-order", deps.OrderHandler.Create)
	app.Get("/order/:id", deps.OrderHandler.Detail)
	app.Get("/order/:id/tracking", deps.OrderHandler.Track)
	app.Get("/order/:id/review", deps.ReviewHandler.Form)
	app.Post("/order/:id/review", deps.ReviewHandler.Submit)

	// Staff auth (login throttled)
	app.Get("/login", authH.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Слишком много попыток. Попробуйте позже."})
		},
	}), authH.Login)
	app.Post("/logout", authH.Logout)

	// Staff record management
	admin := app.Group("/admin", handlers.RequireStaff(authSvc))
	admin.Get("/", deps.AdminHandler.Dashboard)
	admin.Get("/orders/:id", deps.AdminHandler.OrderPage)
	admin.Post("/orders/:id/status", deps.AdminHandler.UpdateStatus)
	admin.Post("/orders/:id/manager", deps.AdminHandler.AssignManager)
	admin.Post("/orders/:id/cars", deps.AdminHandler.AddCar)
	admin.Post("/orders/:id/stages", deps.AdminHandler.AddStage)
	admin.Post("/stages/:id", deps.AdminHandler.UpdateStage)
	admin.Post("/orders/:id/payments", deps.AdminHandler.AddPayment)
	admin.Post("/payments/:id/paid", deps.AdminHandler.MarkPaid)
	admin.Get("/managers", deps.AdminHandler.ManagersPage)
	admin.Post("/managers", deps.AdminHandler.AddManager)
	admin.Post("/managers/:id/active", deps.AdminHandler.ToggleManager)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Страница не найдена"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
