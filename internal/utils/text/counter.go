// Package text provides small helpers for measuring user-facing text.
package text

import "unicode/utf8"

// CountRunes counts the number of Unicode characters (runes) in text.
// Length limits on names are expressed in characters, not bytes:
//
//	CountRunes("Vogue")  // 5
//	CountRunes("Elle 日本") // 7
//	CountRunes("")       // 0
func CountRunes(text string) int {
	return utf8.RuneCountInString(text)
}
