package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/centreconnect/centreconnect/internal/shared/errors"
)

// DefaultCurrency is the ISO 4217 code used when none is configured.
const DefaultCurrency = "ZAR"

// currencySymbols maps ISO codes to their display symbol. Codes missing
// here are displayed by their ISO code followed by a space.
var currencySymbols = map[string]string{
	"ZAR": "R",
	"BWP": "P",
	"NAD": "N$",
	"USD": "$",
	"GBP": "£",
	"EUR": "€",
	"JPY": "¥",
}

type currencySpec struct {
	code   string
	symbol string
	scale  int32
}

func resolveCurrency(code string) (currencySpec, error) {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return currencySpec{}, errors.NewValidationError("invalid currency code", code)
	}

	iso := unit.String()
	symbol, ok := currencySymbols[iso]
	if !ok {
		symbol = iso + " "
	}
	scale, _ := currency.Standard.Rounding(unit)

	return currencySpec{code: iso, symbol: symbol, scale: int32(scale)}, nil
}

// formatAmount renders amount with the locale's separators. Non-finite
// values are not rejected and render as "NaN" or "∞".
func formatAmount(l Locale, c currencySpec, amount float64) string {
	switch {
	case math.IsNaN(amount):
		return applyCurrencyPattern(l, c, "NaN", false)
	case math.IsInf(amount, 0):
		return applyCurrencyPattern(l, c, "∞", amount < 0)
	}

	d := decimal.NewFromFloat(amount).Round(c.scale)
	negative := d.IsNegative()

	intPart, fracPart, _ := strings.Cut(d.Abs().StringFixed(c.scale), ".")
	s := l.groupDigits(intPart)
	if fracPart != "" {
		s += l.DecimalSep + fracPart
	}
	return applyCurrencyPattern(l, c, s, negative)
}

func applyCurrencyPattern(l Locale, c currencySpec, amount string, negative bool) string {
	out := strings.NewReplacer("{symbol}", c.symbol, "{amount}", amount).Replace(l.CurrencyPattern)
	if negative {
		return "-" + out
	}
	return out
}
