package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"
)

func countRows(t *testing.T, db *sqlx.DB, query string) int {
	t.Helper()
	var n int
	if err := db.Get(&n, query); err != nil {
		t.Fatal(err)
	}
	return n
}

func validIntake() map[string]string {
	return map[string]string{
		"full_name":     "Иван Иванов",
		"phone":         "+7 (999) 123-45-67",
		"email":         "ivan2@example.com",
		"telegram":      "@ivan",
		"desired_model": "Toyota Camry",
		"year_min":      "2018",
		"year_max":      "2022",
		"budget_max":    "25000",
		"wishes":        "Белый цвет",
	}
}

func TestCreateOrderSuccessRedirectsToDetail(t *testing.T) {
	app, db := newTestApp(t)
	tok := csrfToken(t, app)

	clientsBefore := countRows(t, db, `SELECT COUNT(*) FROM clients`)
	ordersBefore := countRows(t, db, `SELECT COUNT(*) FROM orders`)

	resp := postForm(t, app, tok, "/create-order", validIntake())
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected 302, got %d body=%s", resp.StatusCode, body)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/order/") {
		t.Fatalf("expected redirect to order detail, got %q", loc)
	}

	if got := countRows(t, db, `SELECT COUNT(*) FROM clients`); got != clientsBefore+1 {
		t.Fatalf("want exactly one new client, before=%d after=%d", clientsBefore, got)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM orders`); got != ordersBefore+1 {
		t.Fatalf("want exactly one new order, before=%d after=%d", ordersBefore, got)
	}

	// the new order must reference the new client
	var n int
	if err := db.Get(&n, `
		SELECT COUNT(*) FROM orders o
		JOIN clients c ON c.id = o.client_id
		WHERE o.id = ?`, strings.TrimPrefix(loc, "/order/")); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatal("created order does not reference a persisted client")
	}

	// redirect target renders
	req := newGet(loc)
	detail, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if detail.StatusCode != http.StatusOK {
		t.Fatalf("order detail after create: expected 200, got %d", detail.StatusCode)
	}
}

func TestCreateOrderMissingClientFieldPersistsNothing(t *testing.T) {
	app, db := newTestApp(t)
	tok := csrfToken(t, app)

	clientsBefore := countRows(t, db, `SELECT COUNT(*) FROM clients`)
	ordersBefore := countRows(t, db, `SELECT COUNT(*) FROM orders`)

	fields := validIntake()
	fields["full_name"] = ""
	resp := postForm(t, app, tok, "/create-order", fields)

	// validation failure re-renders the form, no redirect
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "Обязательное поле") {
		t.Fatalf("field error not reported; body=%s", s)
	}
	// other entered values are retained
	if !strings.Contains(s, "Toyota Camry") {
		t.Fatal("entered values not retained on re-render")
	}

	if got := countRows(t, db, `SELECT COUNT(*) FROM clients`); got != clientsBefore {
		t.Fatalf("client persisted despite invalid submission: before=%d after=%d", clientsBefore, got)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM orders`); got != ordersBefore {
		t.Fatalf("order persisted despite invalid submission: before=%d after=%d", ordersBefore, got)
	}
}

func TestCreateOrderStorageFailureShowsMessageOnSamePage(t *testing.T) {
	app, db := newTestApp(t)
	tok := csrfToken(t, app)
	db.Close()

	resp := postForm(t, app, tok, "/create-order", validIntake())

	// persistence failure re-renders the form, no redirect
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	// the error message must be on this response, not deferred to the next page
	if !strings.Contains(s, "Произошла ошибка при создании заявки") {
		t.Fatalf("failure message missing from re-render; body=%s", s)
	}
	if !strings.Contains(s, "Toyota Camry") {
		t.Fatal("entered values not retained on re-render")
	}
}

func TestCreateOrderInvalidYearRejected(t *testing.T) {
	app, db := newTestApp(t)
	tok := csrfToken(t, app)
	ordersBefore := countRows(t, db, `SELECT COUNT(*) FROM orders`)

	fields := validIntake()
	fields["year_min"] = "1980"
	resp := postForm(t, app, tok, "/create-order", fields)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", resp.StatusCode)
	}
	if got := countRows(t, db, `SELECT COUNT(*) FROM orders`); got != ordersBefore {
		t.Fatal("order persisted despite out-of-range year")
	}
}
