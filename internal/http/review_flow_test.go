package handlers_test

import (
	"net/http"
	"testing"
)

// The seeded order o-demo already carries a review.
func TestAddReviewDuplicateGuardRedirects(t *testing.T) {
	app, db := newTestApp(t)

	resp, err := app.Test(newGet("/order/o-demo/review"))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect away from review form, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/order/o-demo" {
		t.Fatalf("expected redirect to order detail, got %q", loc)
	}

	// POST must not create a second review either
	tok := csrfToken(t, app)
	resp = postForm(t, app, tok, "/order/o-demo/review", map[string]string{
		"rating":      "5",
		"review_text": "Повторный отзыв",
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if n := countRows(t, db, `SELECT COUNT(*) FROM reviews WHERE order_id='o-demo'`); n != 1 {
		t.Fatalf("want exactly one review for o-demo, got %d", n)
	}
}

func TestAddReviewPersistsForFreshOrder(t *testing.T) {
	app, db := newTestApp(t)
	tok := csrfToken(t, app)

	// create an order without a review through the public intake
	resp := postForm(t, app, tok, "/create-order", validIntake())
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("setup order failed: %d", resp.StatusCode)
	}
	orderPath := resp.Header.Get("Location")

	// the form is offered
	formResp, err := app.Test(newGet(orderPath + "/review"))
	if err != nil {
		t.Fatal(err)
	}
	if formResp.StatusCode != http.StatusOK {
		t.Fatalf("expected review form, got %d", formResp.StatusCode)
	}

	resp = postForm(t, app, tok, orderPath+"/review", map[string]string{
		"rating":      "4",
		"review_text": "Все прошло отлично",
	})
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect after review, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != orderPath {
		t.Fatalf("expected redirect to %s, got %q", orderPath, loc)
	}

	orderID := orderPath[len("/order/"):]
	var n int
	if err := db.Get(&n, `
		SELECT COUNT(*) FROM reviews r
		JOIN orders o ON o.id = r.order_id
		WHERE r.order_id = ? AND r.client_id = o.client_id AND r.rating = 4`, orderID); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatal("review not persisted against the order's client")
	}
}

func TestAddReviewValidationReRenders(t *testing.T) {
	app, db := newTestApp(t)
	tok := csrfToken(t, app)

	resp := postForm(t, app, tok, "/create-order", validIntake())
	orderPath := resp.Header.Get("Location")

	resp = postForm(t, app, tok, orderPath+"/review", map[string]string{
		"rating":      "9",
		"review_text": "",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 re-render on invalid review, got %d", resp.StatusCode)
	}
	orderID := orderPath[len("/order/"):]
	if n := countRows(t, db, `SELECT COUNT(*) FROM reviews WHERE order_id='`+orderID+`'`); n != 0 {
		t.Fatal("invalid review must not be persisted")
	}
}
