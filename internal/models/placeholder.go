package models

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// splitFormat breaks a placeholder format such as "{{%s}}" into its prefix
// and suffix. The format must contain exactly one %s marker and a non-empty
// suffix; anything else is degenerate and yields ok == false.
func splitFormat(format string) (prefix, suffix string, ok bool) {
	if format == "" {
		format = DefaultPlaceholderFormat
	}
	parts := strings.Split(format, "%s")
	if len(parts) != 2 || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// ExtractPlaceholders scans content left to right for non-overlapping
// placeholder tokens built from format and returns the inner names in order
// of appearance, duplicates preserved. A degenerate format extracts nothing.
//
// A name containing the first character of the suffix cannot be matched; such
// tokens are silently skipped rather than reported as errors.
func ExtractPlaceholders(content, format string) []string {
	placeholders := []string{}

	prefix, suffix, ok := splitFormat(format)
	if !ok {
		return placeholders
	}

	// The name runs up to the first character of the suffix. That character
	// is a whole rune so multibyte delimiters build a valid pattern.
	first, _ := utf8.DecodeRuneInString(suffix)
	pattern, err := regexp.Compile(
		regexp.QuoteMeta(prefix) +
			"([^" + regexp.QuoteMeta(string(first)) + "]+)" +
			regexp.QuoteMeta(suffix),
	)
	if err != nil {
		return placeholders
	}
	for _, match := range pattern.FindAllStringSubmatch(content, -1) {
		placeholders = append(placeholders, match[1])
	}

	return placeholders
}

// ApplyTemplate substitutes each variable into content by building the
// literal placeholder token from format and replacing every occurrence.
// Replacement is literal, not regex, and values are not escaped; placeholders
// with no matching variable are left unreplaced. A degenerate format, the
// same set ExtractPlaceholders rejects, substitutes nothing.
func ApplyTemplate(content, format string, variables map[string]string) string {
	prefix, suffix, ok := splitFormat(format)
	if !ok {
		return content
	}

	result := content
	for name, value := range variables {
		result = strings.ReplaceAll(result, prefix+name+suffix, value)
	}

	return result
}
