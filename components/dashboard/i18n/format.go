package i18n

import (
	"fmt"
	"math"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	dateLayoutPT     = "2 de January de 2006"
	dateLayoutEN     = "January 2, 2006"
	dateTimeLayoutPT = "2 de January de 2006, 15:04"
	dateTimeLayoutEN = "January 2, 2006 3:04 PM"
	monthLayout      = "Jan"
)

// CurrencySymbol returns the symbol shown in front of amounts for the language.
func CurrencySymbol(lang Language) string {
	if lang == English {
		return "$"
	}
	return "R$"
}

// FormatCurrency renders an amount with two decimals using the language's
// grouping conventions: R$ 1.299,99 for pt and $1,299.99 for en. Negative
// amounts, such as refunds, put the minus before the symbol (-R$ 10,00, -$10.00)
// so the sign is never lost between the symbol and the digits.
func FormatCurrency(lang Language, amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = math.Abs(amount)
	}
	digits := printer(lang).Sprintf("%v", number.Decimal(amount, number.Scale(2)))
	if lang == English {
		return sign + CurrencySymbol(lang) + digits
	}
	return sign + CurrencySymbol(lang) + " " + digits
}

// FormatInteger renders a whole number with locale grouping (2.350 / 2,350).
func FormatInteger(lang Language, value int) string {
	return printer(lang).Sprintf("%v", number.Decimal(value))
}

// FormatDecimal renders a number with a fixed number of decimals.
func FormatDecimal(lang Language, value float64, scale int) string {
	return printer(lang).Sprintf("%v", number.Decimal(value, number.Scale(scale)))
}

// FormatSignedInteger prefixes positive counters with a plus sign, as the KPI cards do.
func FormatSignedInteger(lang Language, value int) string {
	if value > 0 {
		return "+" + FormatInteger(lang, value)
	}
	return FormatInteger(lang, value)
}

// FormatChange renders a locale-invariant percentage literal such as "+20.1%".
func FormatChange(pct float64) string {
	return fmt.Sprintf("%+.1f%%", pct)
}

// FormatDate renders a long calendar date: "15 de junho de 2023" or "June 15, 2023".
func FormatDate(lang Language, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if lang == English {
		return monday.Format(t, dateLayoutEN, monday.LocaleEnUS)
	}
	return monday.Format(t, dateLayoutPT, monday.LocalePtBR)
}

// FormatDateTime renders a long date with the time of day.
func FormatDateTime(lang Language, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if lang == English {
		return monday.Format(t, dateTimeLayoutEN, monday.LocaleEnUS)
	}
	return monday.Format(t, dateTimeLayoutPT, monday.LocalePtBR)
}

// MonthLabels returns the abbreviated month names used on chart axes.
func MonthLabels(lang Language) []string {
	var locale monday.Locale = monday.LocalePtBR
	if lang == English {
		locale = monday.LocaleEnUS
	}
	labels := make([]string, 12)
	for i := range labels {
		t := time.Date(2023, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		labels[i] = monday.Format(t, monthLayout, locale)
	}
	return labels
}

func printer(lang Language) *message.Printer {
	return message.NewPrinter(lang.Tag())
}
