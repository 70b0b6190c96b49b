package amount_words

import (
	"strings"

	"github.com/shopspring/decimal"
)

var ones = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Words spells n using the Indian system (thousand, lakh, crore). Zero is "".
func Words(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 20:
		return ones[n]
	case n < 100:
		return strings.TrimSpace(tens[n/10] + " " + ones[n%10])
	case n < 1000:
		return join(ones[n/100]+" Hundred", Words(n%100))
	case n < 100000:
		return join(Words(n/1000)+" Thousand", Words(n%1000))
	case n < 10000000:
		return join(Words(n/100000)+" Lakh", Words(n%100000))
	default:
		return join(Words(n/10000000)+" Crore", Words(n%10000000))
	}
}

// Rupees renders an amount like "Ten Thousand Three Hundred Rupees and Fifty Paise Only".
// Paise are rounded half up, negative amounts are spelled by absolute value.
func Rupees(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Shift(2).IntPart()

	var parts []string
	if rupees > 0 {
		parts = append(parts, Words(rupees)+" Rupees")
	}
	if paise > 0 {
		parts = append(parts, Words(paise)+" Paise")
	}
	if len(parts) == 0 {
		return "Zero Rupees Only"
	}
	return strings.Join(parts, " and ") + " Only"
}

func join(head, tail string) string {
	if tail == "" {
		return head
	}
	return head + " " + tail
}
