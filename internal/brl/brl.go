// Package brl parses and formats Brazilian-real amounts the way payroll
// users type and read them: "R$ 1.234,56", "7,5%".
package brl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"payroll-engine/internal/payroll"
)

var (
	junk            = regexp.MustCompile(`[^0-9.,-]`)
	thousandsDots   = regexp.MustCompile(`\.(\d{3})(\D|$)`)
	thousandsCommas = regexp.MustCompile(`,(\d{3})(\D|$)`)
)

// Parse reads an amount in pt-BR ("3.000,50"), plain ("3000.50") or
// currency ("R$ 3.000,50") notation. When both separators appear the last
// one is decimal, so "3,000.00" is also read as 3000. Blank or unreadable
// input is an error wrapping payroll.ErrInvalidInput, never zero.
func Parse(s string) (decimal.Decimal, error) {
	clean := junk.ReplaceAllString(s, "")
	if clean == "" {
		return decimal.Zero, fmt.Errorf("%w: %q is not an amount", payroll.ErrInvalidInput, s)
	}

	comma, dot := strings.LastIndex(clean, ","), strings.LastIndex(clean, ".")
	switch {
	case comma >= 0 && dot >= 0:
		// Both present: the last one is the decimal separator.
		if comma > dot {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.Replace(clean, ",", ".", 1)
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case comma >= 0:
		// A comma followed by exactly three digits is a thousands separator.
		for thousandsCommas.MatchString(clean) {
			clean = thousandsCommas.ReplaceAllString(clean, "$1$2")
		}
		clean = strings.Replace(clean, ",", ".", 1)
	default:
		for thousandsDots.MatchString(clean) {
			clean = thousandsDots.ReplaceAllString(clean, "$1$2")
		}
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not an amount", payroll.ErrInvalidInput, s)
	}
	return d, nil
}

// Money renders d as "R$ 1.234,56".
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}
	whole, cents, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "R$ " + groupThousands(whole) + "," + cents
}

// Percent renders a rate as a percentage with at most two decimals: 0.075 -> "7,5%".
func Percent(rate decimal.Decimal) string {
	return strings.Replace(rate.Shift(2).Round(2).String(), ".", ",", 1) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
