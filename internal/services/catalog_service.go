package services

import (
	"strings"

	"autobroker/internal/domain"
	"autobroker/internal/repos"
)

// CatalogService serves the public car catalog and car detail pages.
type CatalogService struct {
	Cars *repos.CarRepo
}

func NewCatalogService(cars *repos.CarRepo) *CatalogService {
	return &CatalogService{Cars: cars}
}

// Search filters cars by brand substring (case-insensitive), exact auction
// country and inclusive year bounds. Empty/nil filters are skipped.
func (s *CatalogService) Search(f repos.CarFilter) ([]domain.Car, error) {
	f.Brand = strings.ToLower(strings.TrimSpace(f.Brand))
	if !domain.ValidCountry(f.Country) {
		f.Country = ""
	}
	return s.Cars.Search(f)
}

// Brands returns the filter choices: distinct brands across all cars.
func (s *CatalogService) Brands() ([]string, error) {
	return s.Cars.Brands()
}

func (s *CatalogService) GetCar(id string) (domain.Car, error) {
	return s.Cars.Get(id)
}
