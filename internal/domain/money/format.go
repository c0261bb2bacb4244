package money

import "github.com/shopspring/decimal"

// FormatINR renders an amount with two decimals and Indian digit grouping:
// the last three integer digits, then groups of two.
//
//	FormatINR(1234567.89) = "12,34,567.89"
func FormatINR(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	intPart, fracPart := s[:len(s)-3], s[len(s)-3:] // fracPart includes the dot

	grouped := groupIndian(intPart)
	if neg {
		return "-" + grouped + fracPart
	}
	return grouped + fracPart
}

// groupIndian inserts commas into a plain digit string using ##,##,### grouping.
func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	head, tail := s[:n-3], s[n-3:]
	buf := make([]byte, 0, n+n/2)
	for i := 0; i < len(head); i++ {
		if i > 0 && (len(head)-i)%2 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, head[i])
	}
	buf = append(buf, ',')
	buf = append(buf, tail...)
	return string(buf)
}
