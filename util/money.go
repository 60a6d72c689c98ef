package util

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatMoney renders whole currency units, e.g. 1500 -> "$1,500.00".
func FormatMoney(amount int) string {
	if amount < 0 {
		return moneyPrinter.Sprintf("-$%d.00", -amount)
	}
	return moneyPrinter.Sprintf("$%d.00", amount)
}
