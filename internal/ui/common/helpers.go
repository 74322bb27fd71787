// Package common provides shared utilities for the UI.
package common

import "strconv"

// TruncateName truncates a player name to the specified maximum length.
func TruncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) > maxLen {
		return string(runes[:maxLen-1]) + "…"
	}
	return name
}

// FormatScore prints a score without trailing zeros: 10, 10.5, 0.
func FormatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
