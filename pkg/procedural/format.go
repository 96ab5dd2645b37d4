package procedural

import "strconv"

// num formats a coordinate with the shortest decimal that round-trips,
// never using exponent notation: 200 prints as "200", 12.5 as "12.5".
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func itoa(v uint64) string {
	return strconv.FormatUint(v, 10)
}
