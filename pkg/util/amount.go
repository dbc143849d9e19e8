// Package util provides amount parsing and formatting helpers shared by
// the record normalization layer and the CLI output.
package util

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// amountRe captures a number in French or plain notation, with an optional
// "k" scale suffix ("250k", "250 k€").
var amountRe = regexp.MustCompile(`(?i)(-?\d+(?:[\s\x{00a0}\x{202f}]\d{3})*(?:[.,]\d+)?)\s*(k€|k\b)?`)

// ParseAmount extracts the numeric value from a free-form amount string.
// It accepts plain numbers ("120"), unit suffixes ("120 m²", "150 000 €"),
// French decimal commas ("1 200,50") and k-scaling ("250k€" -> 250000).
func ParseAmount(s string) (float64, bool) {
	m := amountRe.FindStringSubmatch(s)
	if m == nil || m[1] == "" {
		return 0, false
	}

	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ':
			return -1
		}
		return r
	}, m[1])

	// A single comma is a French decimal separator. When both separators
	// appear, dots are thousand markers.
	if strings.Contains(cleaned, ",") {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.Replace(cleaned, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		v *= 1000
	}
	return v, true
}

// FormatEUR renders an amount the way French quotes print it:
// thin-spaced thousands, comma decimals, trailing euro sign.
func FormatEUR(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(decPart)
	b.WriteString(" €")
	return b.String()
}
