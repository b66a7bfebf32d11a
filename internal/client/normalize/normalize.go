// Package normalize implements the per-field input normalizers of the
// registration form. Every function is pure: it never fails, it only
// truncates, filters and reformats. All writes to the form state go through
// these functions, including values auto-filled from the plate lookup.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// CompletePlate matches a fully typed plate, covering both the legacy
// (AAA9999) and Mercosul (AAA9A99) formats. Lookup triggers only when the
// normalized plate matches.
var CompletePlate = regexp.MustCompile(`^[A-Z]{3}[0-9][0-9A-Z][0-9]{2}$`)

// ptBR prints integers with Brazilian thousands separators (65000 -> 65.000).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics removes combining marks, leaving base letters in place.
func StripDiacritics(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		return s
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func keepAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Plate truncates to 7 characters, keeps only ASCII letters and digits
// (after diacritics removal) and uppercases.
func Plate(s string) string {
	return strings.ToUpper(keepAlnum(StripDiacritics(truncate(s, 7))))
}

// Upper50 is the normalizer for brand, model, variant, color, fuel and city:
// truncate to 50 characters, strip diacritics, uppercase.
func Upper50(s string) string {
	return strings.ToUpper(StripDiacritics(truncate(s, 50)))
}

// State truncates to the 2-letter UF code, strips diacritics and uppercases.
func State(s string) string {
	return strings.ToUpper(StripDiacritics(truncate(s, 2)))
}

// Year truncates to 4 characters and keeps digits only.
func Year(s string) string {
	return keepDigits(truncate(s, 4))
}

// Chassis truncates to 50 characters, keeps letters and digits, uppercases.
func Chassis(s string) string {
	return strings.ToUpper(keepAlnum(truncate(s, 50)))
}

// Mileage keeps up to 7 digits and reformats with pt-BR thousands
// separators. Empty input stays empty.
func Mileage(s string) string {
	return groupedNumber(s, 7)
}

// Price keeps up to 6 digits and reformats with pt-BR thousands separators.
// Empty input stays empty.
func Price(s string) string {
	return groupedNumber(s, 6)
}

func groupedNumber(s string, maxDigits int) string {
	digits := truncate(keepDigits(s), maxDigits)
	if digits == "" {
		return ""
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return ""
	}
	return ptBR.Sprintf("%d", n)
}
