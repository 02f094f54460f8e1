package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ContactForPrice is shown in place of a missing or zero amount.
const ContactForPrice = "Contact for price"

// Currency formats a whole-dollar amount for display.
// Example: Currency(145000) => "$145,000"
//
// Zero is indistinguishable from a missing amount and renders ContactForPrice.
func Currency(amount int64) string {
	if amount == 0 {
		return ContactForPrice
	}
	if amount < 0 {
		return "-$" + grouped(-amount)
	}
	return "$" + grouped(amount)
}

// Number formats an integer with en-US digit grouping.
func Number(n int64) string {
	if n < 0 {
		return "-" + grouped(-n)
	}
	return grouped(n)
}

// Decimal formats a count that may carry a fraction, such as 2.5 baths.
func Decimal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func grouped(n int64) string {
	// Printers keep per-call state, so one per call.
	p := message.NewPrinter(language.AmericanEnglish)
	return p.Sprintf("%d", n)
}
