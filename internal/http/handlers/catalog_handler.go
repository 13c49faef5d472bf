package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"autobroker/internal/domain"
	applog "autobroker/internal/log"
	"autobroker/internal/repos"
	"autobroker/internal/services"
	"autobroker/internal/validate"
)

type CatalogHandler struct {
	Catalog *services.CatalogService
}

// yearParam parses an optional year bound; unparsable values are ignored so
// the dimension simply stays unfiltered.
func yearParam(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// List shows all cars newest-model-year first, narrowed by the optional
// brand/country/year query filters. Brand choices are computed over the
// unfiltered set.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	brand := strings.TrimSpace(c.Query("brand"))
	country := strings.TrimSpace(c.Query("country"))

	f := repos.CarFilter{
		Brand:   brand,
		Country: country,
		YearMin: yearParam(c.Query("year_min")),
		YearMax: yearParam(c.Query("year_max")),
	}

	cars, err := h.Catalog.Search(f)
	if err != nil {
		applog.Error(c, "catalog.search.fail", err, nil)
		return err
	}
	brands, err := h.Catalog.Brands()
	if err != nil {
		applog.Error(c, "catalog.brands.fail", err, nil)
		return err
	}

	return render(c, "catalog", fiber.Map{
		"Cars":            cars,
		"Brands":          brands,
		"Countries":       domain.CountryLabels,
		"SelectedBrand":   brand,
		"SelectedCountry": country,
		"SelectedYearMin": c.Query("year_min"),
		"SelectedYearMax": c.Query("year_max"),
	})
}

func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notFound(c, "Автомобиль не найден")
	}
	car, err := h.Catalog.GetCar(id)
	if err != nil {
		return notFound(c, "Автомобиль не найден")
	}
	return render(c, "car", fiber.Map{"Car": car})
}
