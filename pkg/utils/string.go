// Package utils provides common utility functions.
package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize uppercases the first character and lowercases the rest.
// "abc DEF" becomes "Abc def"; words after the first are not title-cased.
func Capitalize(str string) string {
	if str == "" {
		return str
	}

	first, size := utf8.DecodeRuneInString(str)

	return string(unicode.ToTitle(first)) + strings.ToLower(str[size:])
}

// TruncateRunes keeps at most maxLength characters from the head of str.
// Unlike a display truncation no ellipsis is appended.
func TruncateRunes(str string, maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	if utf8.RuneCountInString(str) <= maxLength {
		return str
	}

	runes := []rune(str)

	return string(runes[:maxLength])
}

// LastPathSegment returns everything after the final "/" in a URL or path.
// A trailing slash yields an empty segment.
func LastPathSegment(url string) string {
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}

	return url
}

// NormalizeWhitespace replaces multiple whitespace with single space.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}
