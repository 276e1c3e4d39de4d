package domain

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Quote is a backend price estimate. It is informational and never persisted.
type Quote struct {
	FinalPrice float64 `json:"finalPrice"`
	Currency   string  `json:"currency"`
	Formatted  string  `json:"formatted"`
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders amount with two decimals and digit grouping, prefixed by the
// currency code when one is given.
func FormatPrice(amount float64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return pricePrinter.Sprintf("%.2f", amount)
	}
	return pricePrinter.Sprintf("%s %.2f", currency, amount)
}
