package utils

import (
	"regexp"
	"strings"
)

// SlugToName converts a URL slug back to a display name for lookup,
// e.g. "goa-getaway" -> "goa getaway". Trip names are matched
// case-insensitively, so casing is left alone.
func SlugToName(slug string) string {
	return strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
}

// NameToSlug converts a trip name to its URL form, e.g. "Goa Getaway" -> "goa-getaway".
func NameToSlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
}

// CleanFileName removes invalid characters from filename
func CleanFileName(filename string) string {
	// Replace invalid characters with underscore
	reg := regexp.MustCompile(`[<>:"/\\|?*]`)
	cleaned := reg.ReplaceAllString(filename, "_")

	// Remove extra spaces and trim
	cleaned = strings.TrimSpace(cleaned)
	cleaned = regexp.MustCompile(`\s+`).ReplaceAllString(cleaned, "_")

	return cleaned
}
