package repos

import (
	"strings"

	"autobroker/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type CarRepo struct{ db *sqlx.DB }

func NewCarRepo(db *sqlx.DB) *CarRepo { return &CarRepo{db: db} }

// CarFilter holds the optional catalog filters. Nil year bounds mean the
// dimension is not filtered.
type CarFilter struct {
	Brand   string
	Country string
	YearMin *int
	YearMax *int
}

const carColumns = `id, order_id, lot_number, vin, brand, model, year, auction_country, current_bid, photo`

func (r *CarRepo) Create(id, orderID, lotNumber, vin, brand, model string, year int, country string, currentBid decimal.Decimal, photo string) error {
	_, err := r.db.Exec(`
	  INSERT INTO cars(id, order_id, lot_number, vin, brand, model, year, auction_country, current_bid, photo)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, id, orderID, lotNumber, vin, brand, model, year, country, currentBid, photo)
	return err
}

func (r *CarRepo) Get(id string) (domain.Car, error) {
	var c domain.Car
	err := r.db.Get(&c, `SELECT `+carColumns+` FROM cars WHERE id = ?`, id)
	return c, err
}

func (r *CarRepo) ListByOrder(orderID string) ([]domain.Car, error) {
	var out []domain.Car
	err := r.db.Select(&out, `SELECT `+carColumns+` FROM cars WHERE order_id = ? ORDER BY year DESC`, orderID)
	return out, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

// Search returns all cars ordered by year descending, narrowed by the
// supplied filters.
func (r *CarRepo) Search(f CarFilter) ([]domain.Car, error) {
	where := `1=1`
	args := []any{}
	if f.Brand != "" {
		// LIKE metacharacters in the query must match literally.
		where += ` AND LOWER(brand) LIKE ? ESCAPE '\'`
		args = append(args, "%"+escapeLike(f.Brand)+"%")
	}
	if f.Country != "" {
		where += ` AND auction_country = ?`
		args = append(args, f.Country)
	}
	if f.YearMin != nil {
		where += ` AND year >= ?`
		args = append(args, *f.YearMin)
	}
	if f.YearMax != nil {
		where += ` AND year <= ?`
		args = append(args, *f.YearMax)
	}

	var out []domain.Car
	err := r.db.Select(&out, `SELECT `+carColumns+` FROM cars WHERE `+where+` ORDER BY year DESC`, args...)
	return out, err
}

// Brands returns the distinct brand names across all cars, unfiltered.
func (r *CarRepo) Brands() ([]string, error) {
	var out []string
	err := r.db.Select(&out, `SELECT DISTINCT brand FROM cars ORDER BY brand`)
	return out, err
}
