// Package translate renders operator-facing messages (startup errors and
// line setting warnings) for the locale of the user running the emulator.
// Console protocol bytes never pass through here.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const fallbackLocale = "en-US"

var printer = newPrinter(userLocales())

func userLocales() []string {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("m9312sim: locale: %v", err)
	}
	return locales
}

func newPrinter(locales []string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{fallbackLocale}
	}
	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key in the user's locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Integer wraps n for From so it prints in local digits but without digit
// grouping; baud rates and addresses read wrong as "38,400".
func Integer(n int) number.Formatter {
	return number.Decimal(n, number.NoSeparator())
}
