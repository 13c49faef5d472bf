package services

import (
	"autobroker/internal/domain"
	"autobroker/internal/repos"
)

// TrackingService computes the client-facing fulfillment progress of an order.
type TrackingService struct {
	Stages *repos.StageRepo
}

func NewTrackingService(stages *repos.StageRepo) *TrackingService {
	return &TrackingService{Stages: stages}
}

// Progress returns the order's stages by last update (oldest first) and the
// completion percentage, floor(100 * completed / total). Zero stages yield 0.
func (s *TrackingService) Progress(orderID string) ([]domain.OrderStage, int, error) {
	stages, err := s.Stages.ListByOrderChrono(orderID)
	if err != nil {
		return nil, 0, err
	}
	if len(stages) == 0 {
		return stages, 0, nil
	}
	completed := 0
	for _, st := range stages {
		if st.Completed {
			completed++
		}
	}
	return stages, completed * 100 / len(stages), nil
}
