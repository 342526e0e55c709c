package extract

import (
	"regexp"
	"strconv"
)

var (
	yearsPhraseRe = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)
	bareYearRe    = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	fourDigitRe   = regexp.MustCompile(`\d{4}`)
)

// EstimateYears infers years of experience from text, defaulting to 0 when no
// signal is found. Methods are tried in priority order and the first one that
// yields a result wins; overlapping signals are never merged:
//
//  1. date-like entities from rec (when available): if they contain at least
//     two distinct 4-digit years, the span between max and min;
//  2. the maximum N across explicit "N years" phrases;
//  3. the span between the max and min bare 4-digit years in [1900,2099].
func EstimateYears(text string, rec Recognizer) int {
	if text == "" {
		return 0
	}

	if rec != nil {
		if span := entityYearSpan(rec.DateEntities(text)); span > 0 {
			return span
		}
	}

	if max := explicitYears(text); max > 0 {
		return max
	}

	return bareYearSpan(text)
}

func entityYearSpan(entities []string) int {
	years := make(map[int]struct{})
	for _, ent := range entities {
		for _, raw := range fourDigitRe.FindAllString(ent, -1) {
			y, err := strconv.Atoi(raw)
			if err != nil || y < 1900 || y > 2099 {
				continue
			}
			years[y] = struct{}{}
		}
	}
	if len(years) < 2 {
		return 0
	}
	lo, hi := 0, 0
	first := true
	for y := range years {
		if first {
			lo, hi = y, y
			first = false
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return hi - lo
}

func explicitYears(text string) int {
	max := 0
	for _, m := range yearsPhraseRe.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > max {
			max = n
		}
	}
	return max
}

func bareYearSpan(text string) int {
	lo, hi := 0, 0
	first := true
	for _, raw := range bareYearRe.FindAllString(text, -1) {
		y, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		if first {
			lo, hi = y, y
			first = false
			continue
		}
		if y < lo {
			lo = y
		}
		if y > hi {
			hi = y
		}
	}
	return hi - lo
}
