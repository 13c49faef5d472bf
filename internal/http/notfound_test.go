package handlers_test

import (
	"net/http"
	"testing"
)

// A bad identifier must come back as 404, never as a server error.
func TestUnknownRecordsReturnNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	paths := []string{
		"/order/no-such-order",
		"/order/no-such-order/tracking",
		"/order/no-such-order/review",
		"/car/no-such-car",
	}
	for _, p := range paths {
		resp, err := app.Test(newGet(p))
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", p, resp.StatusCode)
		}
	}
}

func TestUnknownRouteFallsThroughTo404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(newGet("/definitely/not/a/route"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
