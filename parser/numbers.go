package parser

import (
	"math"
	"strconv"
	"strings"
)

// ParsePercentage normalizes a raw percentage token into a float in
// [0, 100], rounded to two decimals. The token may carry a percent sign,
// regular or non-breaking whitespace, and stray characters from
// inconsistent markup; everything but digits and decimal points is
// stripped. When the stripped token has more than one decimal point the
// first one is kept as the separator and the remaining digit groups are
// concatenated (OCR-style noise such as "4.8.2" reads as 4.82). Values just
// over 100 (up to 100.1) are clamped to 100.0; anything further out of
// range, empty, or dot-only returns nil.
func ParsePercentage(raw string) *float64 {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || strings.Trim(cleaned, ".") == "" {
		return nil
	}

	if strings.Count(cleaned, ".") > 1 {
		parts := strings.Split(cleaned, ".")
		cleaned = parts[0] + "." + strings.Join(parts[1:], "")
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}

	if value > 100 {
		if value <= 100.1 {
			value = 100.0
		} else {
			return nil
		}
	}

	value = math.Round(value*100) / 100
	return &value
}

// ParseVoteCount normalizes a raw vote-count token into a non-negative
// integer. Thousands separators and whitespace (including non-breaking
// spaces) are stripped; the remainder must be purely digits. Anything else
// returns nil — page-format drift degrades to an absent field, never an
// error.
func ParseVoteCount(raw string) *int64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', ' ', ' ', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	if cleaned == "" {
		return nil
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return nil
		}
	}
	value, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}
