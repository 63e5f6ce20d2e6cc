package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Display amounts are Argentine pesos; stored values stay plain integers.
var printer = message.NewPrinter(language.MustParse("es-AR"))

func FormatARS(amount int64) string {
	return printer.Sprintf("$ %d", amount)
}
