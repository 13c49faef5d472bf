package handlers

import (
	"autobroker/internal/config"
	"autobroker/internal/repos"
	"autobroker/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler    *HomeHandler
	PageHandler    *PageHandler
	CatalogHandler *CatalogHandler
	OrderHandler   *OrderHandler
	ReviewHandler  *ReviewHandler
	AdminHandler   *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	clientRepo := repos.NewClientRepo(db)
	managerRepo := repos.NewManagerRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	carRepo := repos.NewCarRepo(db)
	stageRepo := repos.NewStageRepo(db)
	paymentRepo := repos.NewPaymentRepo(db)
	reviewRepo := repos.NewReviewRepo(db)

	intakeSvc := services.NewIntakeService(clientRepo, orderRepo)
	catalogSvc := services.NewCatalogService(carRepo)
	trackingSvc := services.NewTrackingService(stageRepo)
	reviewSvc := services.NewReviewService(reviewRepo)

	return &Deps{
		HomeHandler:    &HomeHandler{Orders: orderRepo, Reviews: reviewRepo},
		PageHandler:    &PageHandler{},
		CatalogHandler: &CatalogHandler{Catalog: catalogSvc},
		OrderHandler: &OrderHandler{
			Intake:   intakeSvc,
			Orders:   orderRepo,
			Cars:     carRepo,
			Stages:   stageRepo,
			Payments: paymentRepo,
			Tracking: trackingSvc,
			Reviews:  reviewSvc,
		},
		ReviewHandler: &ReviewHandler{Orders: orderRepo, Reviews: reviewSvc, MediaDir: cfg.MediaDir},
		AdminHandler: &AdminHandler{
			Orders:   orderRepo,
			Managers: managerRepo,
			Cars:     carRepo,
			Stages:   stageRepo,
			Payments: paymentRepo,
			MediaDir: cfg.MediaDir,
		},
	}
}
