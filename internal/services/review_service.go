package services

import (
	"errors"

	"autobroker/internal/domain"
	"autobroker/internal/forms"
	"autobroker/internal/repos"

	"github.com/google/uuid"
)

// ErrReviewExists is returned when an order already has a review.
var ErrReviewExists = errors.New("review already exists for this order")

// ReviewService guards and persists the one-review-per-order contract.
type ReviewService struct {
	Reviews *repos.ReviewRepo
}

func NewReviewService(reviews *repos.ReviewRepo) *ReviewService {
	return &ReviewService{Reviews: reviews}
}

func (s *ReviewService) Exists(orderID string) (bool, error) {
	return s.Reviews.ExistsForOrder(orderID)
}

// Add creates the review for the order, taking the client from the order
// itself. The duplicate check runs again here so concurrent submissions still
// end at the UNIQUE constraint, not a second review.
func (s *ReviewService) Add(order domain.Order, f *forms.ReviewForm, photo string) (string, error) {
	exists, err := s.Reviews.ExistsForOrder(order.ID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrReviewExists
	}
	id := uuid.NewString()
	if err := s.Reviews.Create(id, order.ClientID, order.ID, f.Rating, f.ReviewText, photo); err != nil {
		return "", err
	}
	return id, nil
}
