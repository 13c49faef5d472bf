package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Seeded catalog: Toyota Camry 2019 (usa) and Hyundai Sonata 2020 (korea).
func fetchCatalog(t *testing.T, app *fiber.App, path string) string {
	t.Helper()
	resp, err := app.Test(newGet(path))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("catalog %s: expected 200, got %d", path, resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}

func TestCatalogBrandFilterCaseInsensitive(t *testing.T) {
	app, _ := newTestApp(t)

	body := fetchCatalog(t, app, "/catalog?brand=toyota")
	if !strings.Contains(body, "Camry") {
		t.Fatal("brand filter dropped a matching car")
	}
	if strings.Contains(body, "Sonata") {
		t.Fatal("brand filter kept a non-matching car")
	}
}

func TestCatalogYearRangeFilter(t *testing.T) {
	app, _ := newTestApp(t)

	body := fetchCatalog(t, app, "/catalog?year_min=2020&year_max=2020")
	if strings.Contains(body, "Camry") {
		t.Fatal("year filter kept a car outside the range")
	}
	if !strings.Contains(body, "Sonata") {
		t.Fatal("year filter dropped a car inside the range")
	}
}

func TestCatalogCountryFilter(t *testing.T) {
	app, _ := newTestApp(t)

	body := fetchCatalog(t, app, "/catalog?country=korea")
	if strings.Contains(body, "Camry") || !strings.Contains(body, "Sonata") {
		t.Fatal("country filter wrong")
	}
}

func TestCatalogUnfilteredShowsAll(t *testing.T) {
	app, _ := newTestApp(t)

	body := fetchCatalog(t, app, "/catalog")
	if !strings.Contains(body, "Camry") || !strings.Contains(body, "Sonata") {
		t.Fatal("unfiltered catalog must list every car")
	}
}

// Brand choices come from the full set so the dropdown stays stable while filtering.
func TestCatalogBrandChoicesUnfiltered(t *testing.T) {
	app, _ := newTestApp(t)

	body := fetchCatalog(t, app, "/catalog?brand=toyota")
	if !strings.Contains(body, "Hyundai") {
		t.Fatal("brand choices must stay unfiltered")
	}
}

// A literal "%" in the brand query is a substring character, not a wildcard.
func TestCatalogBrandPercentMatchesNothing(t *testing.T) {
	app, _ := newTestApp(t)

	body := fetchCatalog(t, app, "/catalog?brand=%25")
	if strings.Contains(body, "Camry") || strings.Contains(body, "Sonata") {
		t.Fatal("wildcard brand query must not match every car")
	}
}

// Malformed numeric filters are ignored rather than erroring out.
func TestCatalogMalformedYearIgnored(t *testing.T) {
	app, _ := newTestApp(t)

	body := fetchCatalog(t, app, "/catalog?year_min=abc")
	if !strings.Contains(body, "Camry") || !strings.Contains(body, "Sonata") {
		t.Fatal("malformed year filter must not filter anything")
	}
}
