package utils

import (
	"fmt"
	"strings"
)

// FormatMoney renders a minor-unit amount as a user-facing dollar figure,
// e.g. 100000 -> "$1,000.00".
func FormatMoney(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	dollars := minor / 100
	cents := minor % 100

	return fmt.Sprintf("%s$%s.%02d", sign, groupThousands(dollars), cents)
}

// groupThousands adds commas for thousands
func groupThousands(value int64) string {
	str := fmt.Sprintf("%d", value)

	n := len(str)
	if n <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}

	return result.String()
}
