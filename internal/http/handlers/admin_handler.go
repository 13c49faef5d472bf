package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"autobroker/internal/domain"
	applog "autobroker/internal/log"
	"autobroker/internal/repos"
	"autobroker/internal/upload"
	"autobroker/internal/validate"
)

// AdminHandler covers the staff record-management surface: order statuses,
// manager assignment, and the out-of-band entities (cars, stages, payments,
// managers) that never go through the public forms.
type AdminHandler struct {
	Orders   *repos.OrderRepo
	Managers *repos.ManagerRepo
	Cars     *repos.CarRepo
	Stages   *repos.StageRepo
	Payments *repos.PaymentRepo
	MediaDir string
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	orders, err := h.Orders.ListRecent(50)
	if err != nil {
		applog.Error(c, "admin.orders.list.fail", err, nil)
		return err
	}
	return render(c, "admin_dashboard", fiber.Map{"Orders": orders, "Statuses": domain.StatusLabels})
}

// GET /admin/orders/:id — per-order management page.
func (h *AdminHandler) OrderPage(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Заявка не найдена")
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		return notFound(c, "Заявка не найдена")
	}
	cars, _ := h.Cars.ListByOrder(order.ID)
	stages, _ := h.Stages.ListByOrder(order.ID)
	payments, _ := h.Payments.ListByOrder(order.ID)
	managers, err := h.Managers.ListActive()
	if err != nil {
		applog.Error(c, "admin.managers.list.fail", err, nil)
		return err
	}
	return render(c, "admin_order", fiber.Map{
		"Order":        order,
		"Cars":         cars,
		"Stages":       stages,
		"Payments":     payments,
		"Managers":     managers,
		"Statuses":     domain.StatusLabels,
		"Countries":    domain.CountryLabels,
		"StageNames":   domain.StageLabels,
		"PaymentTypes": domain.PaymentTypeLabels,
	})
}

// POST /admin/orders/:id/status
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.FormValue("status")
	if !domain.ValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).SendString("invalid status")
	}
	if err := h.Orders.UpdateStatus(id, status); err != nil {
		applog.Error(c, "admin.order.status.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update status")
	}
	applog.Audit(c, "admin.order.status", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin/orders/" + id)
}

// POST /admin/orders/:id/manager — empty manager_id clears the assignment.
func (h *AdminHandler) AssignManager(c *fiber.Ctx) error {
	id := c.Params("id")
	managerID := strings.TrimSpace(c.FormValue("manager_id"))
	if err := h.Orders.AssignManager(id, managerID); err != nil {
		applog.Error(c, "admin.order.manager.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not assign manager")
	}
	applog.Audit(c, "admin.order.manager", map[string]any{"order_id": id, "manager_id": managerID})
	return c.Redirect("/admin/orders/" + id)
}

// POST /admin/orders/:id/cars
func (h *AdminHandler) AddCar(c *fiber.Ctx) error {
	id := c.Params("id")
	lot, okLot := validate.Text(c.FormValue("lot_number"), 50)
	vin, okVIN := validate.Text(c.FormValue("vin"), 17)
	brand, okBrand := validate.Text(c.FormValue("brand"), 50)
	model, okModel := validate.Text(c.FormValue("model"), 50)
	year, okYear := validate.Year(c.FormValue("year"))
	country := c.FormValue("auction_country")
	bid, okBid := validate.Budget(c.FormValue("current_bid"))
	if !okLot || !okVIN || !okBrand || !okModel || !okYear || !okBid || !domain.ValidCountry(country) {
		return c.Status(fiber.StatusBadRequest).SendString("invalid car fields")
	}

	photo := ""
	if fh, err := c.FormFile("photo"); err == nil {
		if err := upload.ValidateImage(fh); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("invalid photo")
		}
		photo = upload.Dest("cars", fh)
		if err := c.SaveFile(fh, filepath.Join(h.MediaDir, photo)); err != nil {
			applog.Error(c, "admin.car.photo.fail", err, nil)
			photo = ""
		}
	}

	carID := uuid.NewString()
	if err := h.Cars.Create(carID, id, lot, vin, brand, model, year, country, bid, photo); err != nil {
		applog.Error(c, "admin.car.create.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not save car")
	}
	applog.Audit(c, "admin.car.create", map[string]any{"order_id": id, "car_id": carID})
	return c.Redirect("/admin/orders/" + id)
}

// POST /admin/orders/:id/stages
func (h *AdminHandler) AddStage(c *fiber.Ctx) error {
	id := c.Params("id")
	name := c.FormValue("stage_name")
	if !domain.ValidStage(name) {
		return c.Status(fiber.StatusBadRequest).SendString("invalid stage")
	}
	comments := strings.TrimSpace(c.FormValue("comments"))
	completed := c.FormValue("completed") == "on"
	if err := h.Stages.Create(uuid.NewString(), id, name, comments, completed); err != nil {
		applog.Error(c, "admin.stage.create.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not save stage")
	}
	applog.Audit(c, "admin.stage.create", map[string]any{"order_id": id, "stage": name})
	return c.Redirect("/admin/orders/" + id)
}

// POST /admin/stages/:id — refreshes the stage's updated_date.
func (h *AdminHandler) UpdateStage(c *fiber.Ctx) error {
	id := c.Params("id")
	st, err := h.Stages.Get(id)
	if err != nil {
		return notFound(c, "Этап не найден")
	}
	completed := c.FormValue("completed") == "on"
	comments := strings.TrimSpace(c.FormValue("comments"))
	if err := h.Stages.Update(id, completed, comments); err != nil {
		applog.Error(c, "admin.stage.update.fail", err, map[string]any{"stage_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update stage")
	}
	applog.Audit(c, "admin.stage.update", map[string]any{"stage_id": id, "completed": completed})
	return c.Redirect("/admin/orders/" + st.OrderID)
}

// POST /admin/orders/:id/payments
func (h *AdminHandler) AddPayment(c *fiber.Ctx) error {
	id := c.Params("id")
	ptype := c.FormValue("payment_type")
	amount, okAmount := validate.Budget(c.FormValue("amount"))
	if !domain.ValidPaymentType(ptype) || !okAmount {
		return c.Status(fiber.StatusBadRequest).SendString("invalid payment fields")
	}
	if err := h.Payments.Create(uuid.NewString(), id, ptype, amount); err != nil {
		applog.Error(c, "admin.payment.create.fail", err, map[string]any{"order_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not save payment")
	}
	applog.Audit(c, "admin.payment.create", map[string]any{"order_id": id, "type": ptype})
	return c.Redirect("/admin/orders/" + id)
}

// POST /admin/payments/:id/paid — stamps payment_date.
func (h *AdminHandler) MarkPaid(c *fiber.Ctx) error {
	id := c.Params("id")
	orderID := c.FormValue("order_id")
	if err := h.Payments.MarkPaid(id); err != nil {
		applog.Error(c, "admin.payment.paid.fail", err, map[string]any{"payment_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not mark paid")
	}
	applog.Audit(c, "admin.payment.paid", map[string]any{"payment_id": id})
	return c.Redirect("/admin/orders/" + orderID)
}

// GET /admin/managers
func (h *AdminHandler) ManagersPage(c *fiber.Ctx) error {
	managers, err := h.Managers.List()
	if err != nil {
		applog.Error(c, "admin.managers.list.fail", err, nil)
		return err
	}
	return render(c, "admin_managers", fiber.Map{"Managers": managers})
}

// POST /admin/managers
func (h *AdminHandler) AddManager(c *fiber.Ctx) error {
	name, okName := validate.Text(c.FormValue("full_name"), 200)
	phone, okPhone := validate.Phone(c.FormValue("phone"))
	email, okEmail := validate.Email(c.FormValue("email"))
	if !okName || !okPhone || !okEmail {
		return c.Status(fiber.StatusBadRequest).SendString("invalid manager fields")
	}
	if err := h.Managers.Create(uuid.NewString(), name, phone, email); err != nil {
		applog.Error(c, "admin.manager.create.fail", err, nil)
		return c.Status(fiber.StatusBadRequest).SendString("could not save manager")
	}
	applog.Audit(c, "admin.manager.create", map[string]any{"email": email})
	return c.Redirect("/admin/managers")
}

// POST /admin/managers/:id/active
func (h *AdminHandler) ToggleManager(c *fiber.Ctx) error {
	id := c.Params("id")
	active := c.FormValue("active") == "1"
	if err := h.Managers.SetActive(id, active); err != nil {
		applog.Error(c, "admin.manager.active.fail", err, map[string]any{"manager_id": id})
		return c.Status(fiber.StatusBadRequest).SendString("could not update manager")
	}
	applog.Audit(c, "admin.manager.active", map[string]any{"manager_id": id, "active": active})
	return c.Redirect("/admin/managers")
}
