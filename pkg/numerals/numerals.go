// Package numerals renders ASCII digits as their Unicode subscript or
// superscript forms. All other characters pass through unchanged.
package numerals

import (
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var (
	subscriptDigits   = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}
	superscriptDigits = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}
)

// Subscript replaces every ASCII digit in s with its subscript equivalent.
func Subscript(s string) string {
	return mapDigits(s, &subscriptDigits)
}

// Superscript replaces every ASCII digit in s with its superscript equivalent.
func Superscript(s string) string {
	return mapDigits(s, &superscriptDigits)
}

func mapDigits(s string, table *[10]rune) string {
	t := runes.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return table[r-'0']
		}
		return r
	})
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
