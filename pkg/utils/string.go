// Package utils provides small string utilities shared across the pipeline.
package utils

import (
	"strings"
	"unicode"
)

// NormalizeWhitespace replaces runs of whitespace with a single space and
// trims the ends.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// SnakeCase sanitizes a column header to the pipeline's naming convention:
// lowercase, runs of non-alphanumeric characters collapsed to a single
// underscore. "Property ZIP Code" becomes "property_zip_code".
func SnakeCase(str string) string {
	var sb strings.Builder

	lastUnderscore := true // suppress a leading underscore

	for _, r := range strings.ToLower(strings.TrimSpace(str)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)

			lastUnderscore = false

			continue
		}

		if !lastUnderscore {
			sb.WriteRune('_')

			lastUnderscore = true
		}
	}

	return strings.TrimRight(sb.String(), "_")
}

// DigitRuns returns every maximal run of consecutive ASCII digits in str.
func DigitRuns(str string) []string {
	var runs []string

	start := -1

	for i, r := range str {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			runs = append(runs, str[start:i])
			start = -1
		}
	}

	if start >= 0 {
		runs = append(runs, str[start:])
	}

	return runs
}
