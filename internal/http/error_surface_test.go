package handlers_test

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

// When storage fails the user gets the friendly error page, not internals.
func TestStorageFailureRendersFriendlyError(t *testing.T) {
	app, db := newTestApp(t)
	db.Close()

	resp, err := app.Test(newGet("/catalog"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Попробуйте еще раз") {
		t.Fatal("friendly error message missing")
	}
	if strings.Contains(string(body), "database") || strings.Contains(string(body), "sql") {
		t.Fatal("error page must not leak internals")
	}
}
