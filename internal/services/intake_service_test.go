package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // pure-Go SQLite driver

	"autobroker/internal/forms"
	"autobroker/internal/repos"
	"autobroker/internal/services"
)

func intakeDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE clients(
	  id TEXT PRIMARY KEY, full_name TEXT, phone TEXT, email TEXT,
	  telegram TEXT DEFAULT '', registration_date TEXT DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE orders(
	  id TEXT PRIMARY KEY, client_id TEXT, manager_id TEXT,
	  desired_model TEXT, year_min INTEGER, year_max INTEGER,
	  budget_max NUMERIC, wishes TEXT DEFAULT '',
	  status TEXT DEFAULT 'new', created_date TEXT DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}

func TestIntakeCreateOrder(t *testing.T) {
	db := intakeDB(t)
	clientRepo := repos.NewClientRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	svc := services.NewIntakeService(clientRepo, orderRepo)

	cf := &forms.ClientForm{FullName: "Иван Иванов", Phone: "+7 999 123-45-67", Email: "ivan@example.com", Telegram: "@ivan"}
	of := &forms.OrderForm{DesiredModel: "Toyota Camry", YearMin: 2018, YearMax: 2022, Budget: decimal.NewFromInt(25000), Wishes: "белый"}

	orderID, err := svc.CreateOrder(cf, of)
	if err != nil {
		t.Fatal(err)
	}
	if orderID == "" {
		t.Fatal("no order id returned")
	}

	order, err := orderRepo.Get(orderID)
	if err != nil {
		t.Fatal(err)
	}
	if order.Status != "new" {
		t.Fatalf("want default status new, got %q", order.Status)
	}
	if order.CreatedDate == "" {
		t.Fatal("created_date not assigned by storage")
	}

	client, err := clientRepo.Get(order.ClientID)
	if err != nil {
		t.Fatalf("order does not reference a persisted client: %v", err)
	}
	if client.FullName != "Иван Иванов" {
		t.Fatalf("client fields lost: %+v", client)
	}
	if client.RegistrationDate == "" {
		t.Fatal("registration_date not assigned by storage")
	}

	var nClients, nOrders int
	if err := db.Get(&nClients, `SELECT COUNT(*) FROM clients`); err != nil {
		t.Fatal(err)
	}
	if err := db.Get(&nOrders, `SELECT COUNT(*) FROM orders`); err != nil {
		t.Fatal(err)
	}
	if nClients != 1 || nOrders != 1 {
		t.Fatalf("want exactly one client and one order, got %d/%d", nClients, nOrders)
	}
}
