package handlers

import (
	"github.com/gofiber/fiber/v2"

	"autobroker/internal/forms"
	applog "autobroker/internal/log"
	"autobroker/internal/repos"
	"autobroker/internal/services"
	"autobroker/internal/validate"
)

type OrderHandler struct {
	Intake   *services.IntakeService
	Orders   *repos.OrderRepo
	Cars     *repos.CarRepo
	Stages   *repos.StageRepo
	Payments *repos.PaymentRepo
	Tracking *services.TrackingService
	Reviews  *services.ReviewService
}

// CreateForm renders the empty paired client + order intake.
func (h *OrderHandler) CreateForm(c *fiber.Ctx) error {
	return render(c, "create_order", fiber.Map{
		"ClientForm": &forms.ClientForm{},
		"OrderForm":  &forms.OrderForm{},
	})
}

// Create validates both intake forms and persists the client first, then the
// order referencing it. Validation failure re-renders both forms with errors
// and entered values; a persistence failure surfaces a generic message.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	cf := forms.ParseClientForm(c)
	of := forms.ParseOrderForm(c)

	cfOK := cf.Valid()
	ofOK := of.Valid()
	if !cfOK || !ofOK {
		applog.Security(c, "order.create.validation", map[string]any{
			"client_errors": len(cf.Errors), "order_errors": len(of.Errors),
		})
		return render(c, "create_order", fiber.Map{
			"ClientForm": cf,
			"OrderForm":  of,
		})
	}

	orderID, err := h.Intake.CreateOrder(cf, of)
	if err != nil {
		applog.Error(c, "order.create.fail", err, nil)
		// No redirect here, so the message goes straight into the render
		// data; a cookie flash would only show up on the next page.
		return render(c, "create_order", fiber.Map{
			"ClientForm": cf,
			"OrderForm":  of,
			"Flash":      &Flash{Level: "error", Text: "Произошла ошибка при создании заявки. Попробуйте еще раз."},
		})
	}

	applog.Audit(c, "order.create", map[string]any{"order_id": orderID})
	setFlash(c, "success", "Заявка успешно создана! Мы свяжемся с вами в ближайшее время.")
	return c.Redirect("/order/" + orderID)
}

// Detail shows one order with its cars, stages, payments and whether a
// review already exists.
func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Заявка не найдена")
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		return notFound(c, "Заявка не найдена")
	}

	cars, err := h.Cars.ListByOrder(order.ID)
	if err != nil {
		applog.Error(c, "order.detail.cars.fail", err, nil)
		return err
	}
	stages, err := h.Stages.ListByOrder(order.ID)
	if err != nil {
		applog.Error(c, "order.detail.stages.fail", err, nil)
		return err
	}
	payments, err := h.Payments.ListByOrder(order.ID)
	if err != nil {
		applog.Error(c, "order.detail.payments.fail", err, nil)
		return err
	}
	hasReview, err := h.Reviews.Exists(order.ID)
	if err != nil {
		applog.Error(c, "order.detail.review.fail", err, nil)
		return err
	}

	return render(c, "order_detail", fiber.Map{
		"Order":     order,
		"Cars":      cars,
		"Stages":    stages,
		"Payments":  payments,
		"HasReview": hasReview,
	})
}

// Track shows client-facing fulfillment progress: stages ordered by last
// update (oldest first) plus the completion percentage.
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Заявка не найдена")
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		return notFound(c, "Заявка не найдена")
	}

	stages, progress, err := h.Tracking.Progress(order.ID)
	if err != nil {
		applog.Error(c, "order.track.fail", err, nil)
		return err
	}
	return render(c, "order_tracking", fiber.Map{
		"Order":    order,
		"Stages":   stages,
		"Progress": progress,
	})
}
