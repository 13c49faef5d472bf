package handlers

import (
	"errors"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"autobroker/internal/domain"
	"autobroker/internal/forms"
	applog "autobroker/internal/log"
	"autobroker/internal/repos"
	"autobroker/internal/services"
	"autobroker/internal/upload"
	"autobroker/internal/validate"
)

type ReviewHandler struct {
	Orders   *repos.OrderRepo
	Reviews  *services.ReviewService
	MediaDir string
}

// loadOrder resolves the order for both Form and Submit, applying the
// duplicate-review guard before any form is shown or processed. A nil order
// with a nil error means the response was already written.
func (h *ReviewHandler) loadOrder(c *fiber.Ctx) (*domain.Order, error) {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return nil, notFound(c, "Заявка не найдена")
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		return nil, notFound(c, "Заявка не найдена")
	}
	exists, err := h.Reviews.Exists(order.ID)
	if err != nil {
		applog.Error(c, "review.guard.fail", err, nil)
		return nil, err
	}
	if exists {
		setFlash(c, "warning", "Отзыв для этого заказа уже существует")
		return nil, c.Redirect("/order/" + order.ID)
	}
	return &order, nil
}

// Form renders the empty review intake for an order without a review yet.
func (h *ReviewHandler) Form(c *fiber.Ctx) error {
	order, err := h.loadOrder(c)
	if order == nil {
		return err
	}
	return render(c, "add_review", fiber.Map{
		"Order":   order,
		"Form":    &forms.ReviewForm{},
		"Choices": forms.RatingChoices(),
	})
}

// Submit validates the review intake, stores the optional photo and persists
// the review against the order's client.
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	order, err := h.loadOrder(c)
	if order == nil {
		return err
	}

	f := forms.ParseReviewForm(c)
	if !f.Valid() {
		applog.Security(c, "review.validation", map[string]any{"errors": len(f.Errors)})
		return render(c, "add_review", fiber.Map{
			"Order":   order,
			"Form":    f,
			"Choices": forms.RatingChoices(),
		})
	}

	photo := ""
	if f.Photo != nil {
		photo = upload.Dest("reviews", f.Photo)
		if err := c.SaveFile(f.Photo, filepath.Join(h.MediaDir, photo)); err != nil {
			applog.Error(c, "review.photo.save.fail", err, nil)
			photo = ""
		}
	}

	if _, err := h.Reviews.Add(*order, f, photo); err != nil {
		if errors.Is(err, services.ErrReviewExists) {
			setFlash(c, "warning", "Отзыв для этого заказа уже существует")
			return c.Redirect("/order/" + order.ID)
		}
		applog.Error(c, "review.create.fail", err, nil)
		setFlash(c, "error", "Не удалось сохранить отзыв. Попробуйте еще раз.")
		return c.Redirect("/order/" + order.ID)
	}

	applog.Audit(c, "review.create", map[string]any{"order_id": order.ID})
	setFlash(c, "success", "Спасибо за ваш отзыв!")
	return c.Redirect("/order/" + order.ID)
}
