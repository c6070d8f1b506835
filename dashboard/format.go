package dashboard

import (
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
	trillion = decimal.NewFromInt(1_000_000_000_000)
)

// FormatPrice renders a USD price. Sub-dollar prices keep more digits.
func FormatPrice(price float64) string {
	d := decimal.NewFromFloat(price)
	if d.Abs().LessThan(decimal.NewFromInt(1)) {
		return "$" + d.Round(6).String()
	}
	return "$" + d.StringFixed(2)
}

// FormatMarketCap renders a USD amount with a T/B/M/K suffix
func FormatMarketCap(marketCap float64) string {
	d := decimal.NewFromFloat(marketCap)
	abs := d.Abs()

	switch {
	case abs.GreaterThanOrEqual(trillion):
		return "$" + d.Div(trillion).StringFixed(2) + "T"
	case abs.GreaterThanOrEqual(billion):
		return "$" + d.Div(billion).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(million):
		return "$" + d.Div(million).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return "$" + d.Div(thousand).StringFixed(2) + "K"
	default:
		return "$" + d.StringFixed(2)
	}
}
