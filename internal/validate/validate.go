package validate

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"autobroker/internal/domain"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// Digits with an optional leading + and common separators.
	rePhone = regexp.MustCompile(`^\+?[0-9()\- ]{5,20}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 100 {
		return s, false
	}
	return s, reEmail.MatchString(s)
}

func Phone(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > 20 {
		return s, false
	}
	return s, rePhone.MatchString(s)
}

// Text validates a required free-text field with a max length.
// Limits count characters, not bytes, so Cyrillic input gets the full cap.
func Text(s string, max int) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || utf8.RuneCountInString(s) > max {
		return s, false
	}
	return s, true
}

// Year parses a desired-model year and checks the accepted window.
func Year(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, n >= domain.YearMin && n <= domain.YearMax
}

// Budget parses a money amount: non-negative, at most 2 fraction digits
// and 12 digits total.
func Budget(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero, false
	}
	if d.Exponent() < -2 {
		return decimal.Zero, false
	}
	digits := 0
	for _, r := range d.Abs().String() {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits > 12 {
		return decimal.Zero, false
	}
	return d, true
}

// Rating parses a review rating in [1,5].
func Rating(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, n >= 1 && n <= 5
}

// ID validates a record identifier taken from a URL path.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Password enforces a length window for staff login checks.
func Password(s string) bool {
	return len(s) >= 8 && len(s) <= 72
}
