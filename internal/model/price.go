package model

import (
	"regexp"
	"strconv"
	"strings"
)

const PriceConstraints = "Price should be a non-negative number with at most 2 decimal places, optionally " +
	"preceded or followed by a 2-3 letter currency code or a currency symbol (e.g. 12.50, $12, 30 SGD)"

var pricePattern = regexp.MustCompile(`^(?:([A-Za-z]{2,3}|[$€£¥₹])\s?)?([0-9]+(?:\.[0-9]{1,2})?)(?:\s?([A-Za-z]{2,3}|[$€£¥₹]))?$`)

// Price is an amount with an optional currency affix. Ordering uses the
// amount only.
type Price struct {
	raw    string
	amount float64
	unit   string
}

// NewPrice validates s as a price. A currency may appear before or after the
// amount, but not on both sides.
func NewPrice(s string) (Price, error) {
	trimmed := strings.TrimSpace(s)
	m := pricePattern.FindStringSubmatch(trimmed)
	if m == nil || (m[1] != "" && m[3] != "") {
		return Price{}, invalid("price", s, PriceConstraints)
	}
	amount, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Price{}, invalid("price", s, PriceConstraints)
	}
	unit := m[1]
	if unit == "" {
		unit = m[3]
	}
	return Price{raw: trimmed, amount: amount, unit: unit}, nil
}

// IsSet reports whether a price was provided.
func (p Price) IsSet() bool { return p.raw != "" }

// Amount returns the numeric value, 0 when unset.
func (p Price) Amount() float64 { return p.amount }

// Unit returns the currency code or symbol, possibly empty.
func (p Price) Unit() string { return p.unit }

func (p Price) String() string { return p.raw }
