package format

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var hundred = big.NewInt(100)

// Currency formats an amount as Brazilian reais with two decimals,
// e.g. R$1.234,50 and -R$12,00. Amounts are rounded half to even.
func Currency(amount decimal.Decimal) string {
	amount = amount.RoundBank(2)

	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	var whole, cents big.Int
	whole.QuoRem(amount.Shift(2).BigInt(), hundred, &cents)

	return fmt.Sprintf("%sR$%s,%02d", sign, group(&whole), cents.Int64())
}

// group prints the integer part with pt-BR digit grouping.
func group(whole *big.Int) string {
	if whole.IsInt64() {
		return printer.Sprint(number.Decimal(whole.Int64()))
	}

	digits := whole.String()
	out := digits[:len(digits)%3]
	for i := len(digits) % 3; i < len(digits); i += 3 {
		if out != "" {
			out += "."
		}
		out += digits[i : i+3]
	}
	return out
}
