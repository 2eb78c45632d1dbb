package utils

import "fmt"

// FormatAmount renders a whole-unit currency amount with thousands separators,
// e.g. 1250000 -> "1,250,000"
func FormatAmount(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%d", amount)
	out := ""
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(digit)
	}

	if negative {
		return "-" + out
	}
	return out
}
