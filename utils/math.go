package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParsePrice parses a trip price stored as free text. Blank or non-numeric
// prices are treated as zero rather than an error; trips without a usable
// price are simply free to book.
func ParsePrice(price string) int {
	trimmed := strings.TrimSpace(price)
	if trimmed == "" {
		return 0
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// Round1 rounds a number to 1 decimal place (average ratings)
func Round1(num float64) float64 {
	return math.Round(num*10) / 10
}
