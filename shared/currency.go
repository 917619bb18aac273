package shared

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySymbols maps ISO 4217 codes to their display symbols. Codes
// without an entry render with the bare code as prefix.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// FormatCurrency renders amount with its currency symbol, thousands
// separators and two decimal places. Unknown currency codes are used as the
// prefix directly, so FormatCurrency(x, "CAD") yields "CAD1,234.56". Negative
// amounts carry the minus sign after the symbol.
func FormatCurrency(amount decimal.Decimal, currency string) string {
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency
	}

	return symbol + groupThousands(amount.StringFixed(2))
}

// groupThousands inserts comma separators into the integer part of a fixed
// two-decimal string such as "1234567.89".
func groupThousands(fixed string) string {
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	var sb strings.Builder

	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}

	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}

		sb.WriteString(intPart[i : i+3])
	}

	return sign + sb.String() + "." + fracPart
}
