package domain

import "github.com/shopspring/decimal"

// Auction countries.
const (
	CountryUSA    = "usa"
	CountryKorea  = "korea"
	CountryChina  = "china"
	CountryEurope = "europe"
	CountryJapan  = "japan"
)

var CountryLabels = map[string]string{
	CountryUSA:    "США",
	CountryKorea:  "Корея",
	CountryChina:  "Китай",
	CountryEurope: "Европа",
	CountryJapan:  "Япония",
}

func ValidCountry(s string) bool { _, ok := CountryLabels[s]; return ok }

// Car is a candidate vehicle found at auction for an order.
type Car struct {
	ID             string          `db:"id"`
	OrderID        string          `db:"order_id"`
	LotNumber      string          `db:"lot_number"`
	VIN            string          `db:"vin"`
	Brand          string          `db:"brand"`
	Model          string          `db:"model"`
	Year           int             `db:"year"`
	AuctionCountry string          `db:"auction_country"`
	CurrentBid     decimal.Decimal `db:"current_bid"`
	Photo          string          `db:"photo"`
}

func (c Car) CountryLabel() string { return CountryLabels[c.AuctionCountry] }
