package services

import (
	"autobroker/internal/forms"
	"autobroker/internal/repos"

	"github.com/google/uuid"
)

// IntakeService persists the paired client + order intake submission.
type IntakeService struct {
	Clients *repos.ClientRepo
	Orders  *repos.OrderRepo
}

func NewIntakeService(clients *repos.ClientRepo, orders *repos.OrderRepo) *IntakeService {
	return &IntakeService{Clients: clients, Orders: orders}
}

// CreateOrder saves the client first, then the order referencing it, and
// returns the new order id. If the order insert fails after the client was
// saved, the client is left behind; callers surface a generic error.
func (s *IntakeService) CreateOrder(cf *forms.ClientForm, of *forms.OrderForm) (string, error) {
	clientID := uuid.NewString()
	if err := s.Clients.Create(clientID, cf.FullName, cf.Phone, cf.Email, cf.Telegram); err != nil {
		return "", err
	}

	orderID := uuid.NewString()
	if err := s.Orders.Create(orderID, clientID, of.DesiredModel, of.YearMin, of.YearMax, of.Budget, of.Wishes); err != nil {
		return "", err
	}
	return orderID, nil
}
