package repos

import (
	"log"
	"strings"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	// Foreign keys must be on for every pooled connection, so they go into
	// the DSN rather than a one-off PRAGMA statement.
	if !strings.Contains(dsn, "_pragma") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=foreign_keys(1)"
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// An in-memory database lives per-connection, so it must not be pooled.
	if strings.Contains(dsn, ":memory:") {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed demo records if DB is empty (managers, one client/order with cars,
	// stages, payments and a review)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	// Ensure a staff account exists (idempotent; safe to run every start)
	if err := seedStaff(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
-- Clients
CREATE TABLE IF NOT EXISTS clients(
  id TEXT PRIMARY KEY,
  full_name TEXT NOT NULL,
  phone TEXT NOT NULL,
  email TEXT NOT NULL,
  telegram TEXT NOT NULL DEFAULT '',
  registration_date TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Managers
CREATE TABLE IF NOT EXISTS managers(
  id TEXT PRIMARY KEY,
  full_name TEXT NOT NULL,
  phone TEXT NOT NULL,
  email TEXT NOT NULL,
  active INTEGER NOT NULL DEFAULT 1
);

-- Orders
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
  manager_id TEXT NULL REFERENCES managers(id) ON DELETE SET NULL,
  desired_model TEXT NOT NULL,
  year_min INTEGER NOT NULL CHECK (year_min BETWEEN 1990 AND 2030),
  year_max INTEGER NOT NULL CHECK (year_max BETWEEN 1990 AND 2030),
  budget_max NUMERIC NOT NULL CHECK (budget_max >= 0),
  wishes TEXT NOT NULL DEFAULT '',
  status TEXT NOT NULL DEFAULT 'new'
    CHECK (status IN ('new','in_progress','searching','completed','cancelled')),
  created_date TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_orders_client  ON orders(client_id);
CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_date);
CREATE INDEX IF NOT EXISTS idx_orders_status  ON orders(status);

-- Cars found at auction
CREATE TABLE IF NOT EXISTS cars(
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  lot_number TEXT NOT NULL,
  vin TEXT NOT NULL,
  brand TEXT NOT NULL,
  model TEXT NOT NULL,
  year INTEGER NOT NULL,
  auction_country TEXT NOT NULL
    CHECK (auction_country IN ('usa','korea','china','europe','japan')),
  current_bid NUMERIC NOT NULL,
  photo TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_cars_order ON cars(order_id);
CREATE INDEX IF NOT EXISTS idx_cars_brand ON cars(LOWER(brand));
CREATE INDEX IF NOT EXISTS idx_cars_year  ON cars(year);

-- Fulfillment stages
CREATE TABLE IF NOT EXISTS order_stages(
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  stage_name TEXT NOT NULL
    CHECK (stage_name IN ('search','auction','shipping','customs','registration')),
  completed INTEGER NOT NULL DEFAULT 0,
  comments TEXT NOT NULL DEFAULT '',
  updated_date TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_stages_order ON order_stages(order_id);

-- Payments
CREATE TABLE IF NOT EXISTS payments(
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  payment_type TEXT NOT NULL
    CHECK (payment_type IN ('deposit','auction','shipping','customs','final')),
  amount NUMERIC NOT NULL,
  paid INTEGER NOT NULL DEFAULT 0,
  payment_date TEXT NULL
);
CREATE INDEX IF NOT EXISTS idx_payments_order ON payments(order_id);

-- Reviews: at most one per order
CREATE TABLE IF NOT EXISTS reviews(
  id TEXT PRIMARY KEY,
  client_id TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
  order_id TEXT NOT NULL UNIQUE REFERENCES orders(id) ON DELETE CASCADE,
  rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
  review_text TEXT NOT NULL,
  review_date TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  photo TEXT NOT NULL DEFAULT ''
);

-- Staff & sessions
CREATE TABLE IF NOT EXISTS staff(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_staff_email ON staff(LOWER(email));

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,
  staff_id TEXT NULL REFERENCES staff(id) ON DELETE CASCADE,
  created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
  last_seen TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_staff ON sessions(staff_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM managers`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo managers/client/order")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO managers(id,full_name,phone,email,active) VALUES
	  ('m-orlov',   'Орлов Дмитрий',   '+7 (912) 000-11-22', 'orlov@autobroker.test',   1),
	  ('m-titova',  'Титова Анна',     '+7 (912) 000-33-44', 'titova@autobroker.test',  1),
	  ('m-fomin',   'Фомин Сергей',    '+7 (912) 000-55-66', 'fomin@autobroker.test',   0)`)

	tx.MustExec(`INSERT INTO clients(id,full_name,phone,email,telegram) VALUES
	  ('c-demo','Иван Иванов','+7 (999) 123-45-67','ivan@example.com','@ivan')`)

	tx.MustExec(`INSERT INTO orders(id,client_id,manager_id,desired_model,year_min,year_max,budget_max,wishes,status) VALUES
	  ('o-demo','c-demo','m-orlov','Toyota Camry',2018,2022,25000,'Белый или серый цвет','completed')`)

	tx.MustExec(`INSERT INTO cars(id,order_id,lot_number,vin,brand,model,year,auction_country,current_bid) VALUES
	  ('car-demo-1','o-demo','40123','4T1BF1FK5HU999001','Toyota','Camry',2019,'usa',14800),
	  ('car-demo-2','o-demo','51877','KMHL14JA3LA999002','Hyundai','Sonata',2020,'korea',13200)`)

	tx.MustExec(`INSERT INTO order_stages(id,order_id,stage_name,completed,comments) VALUES
	  ('st-demo-1','o-demo','search',1,'Подобраны два лота'),
	  ('st-demo-2','o-demo','auction',1,'Выкуплен лот 40123'),
	  ('st-demo-3','o-demo','shipping',1,''),
	  ('st-demo-4','o-demo','customs',1,''),
	  ('st-demo-5','o-demo','registration',1,'')`)

	tx.MustExec(`INSERT INTO payments(id,order_id,payment_type,amount,paid,payment_date) VALUES
	  ('p-demo-1','o-demo','deposit',1000,1,CURRENT_TIMESTAMP),
	  ('p-demo-2','o-demo','auction',14800,1,CURRENT_TIMESTAMP),
	  ('p-demo-3','o-demo','final',2400,0,NULL)`)

	tx.MustExec(`INSERT INTO reviews(id,client_id,order_id,rating,review_text) VALUES
	  ('r-demo','c-demo','o-demo',5,'Машину привезли раньше срока, состояние как в отчете.')`)

	return tx.Commit()
}

// seedStaff ensures one staff account exists (idempotent).
func seedStaff(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO staff(id,email,name,password_hash)
		VALUES('s-admin','admin@autobroker.test','Администратор',?)
		ON CONFLICT(email) DO NOTHING
	`, string(h))
	return err
}
