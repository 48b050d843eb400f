// Package utils carries the presentation helpers the booking UI leans on:
// logger bootstrap, currency and date formatting, contact-detail validation,
// export file writing and transient notifications. None of it belongs to the
// data model.
package utils

import (
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCurrency renders an amount in two-decimal currency style for the
// given ISO 4217 code. An unknown code falls back to GBP.
func FormatCurrency(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.GBP
	}
	p := message.NewPrinter(language.BritishEnglish)
	return p.Sprint(currency.Symbol(unit.Amount(amount)))
}

// FormatDate renders t in the short day/month/year form used across the UI.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
