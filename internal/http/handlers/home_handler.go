package handlers

import (
	"github.com/gofiber/fiber/v2"

	"autobroker/internal/domain"
	applog "autobroker/internal/log"
	"autobroker/internal/repos"
)

type HomeHandler struct {
	Orders  *repos.OrderRepo
	Reviews *repos.ReviewRepo
}

// Home shows the 6 most recent orders, the 3 most recent reviews and the
// number of completed orders. Empty lists render fine.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	orders, err := h.Orders.ListRecent(6)
	if err != nil {
		applog.Error(c, "home.orders.fail", err, nil)
		return err
	}
	reviews, err := h.Reviews.ListRecent(3)
	if err != nil {
		applog.Error(c, "home.reviews.fail", err, nil)
		return err
	}
	completed, err := h.Orders.CountByStatus(domain.StatusCompleted)
	if err != nil {
		applog.Error(c, "home.count.fail", err, nil)
		return err
	}
	return render(c, "home", fiber.Map{
		"RecentOrders":    orders,
		"Reviews":         reviews,
		"CompletedOrders": completed,
	})
}
