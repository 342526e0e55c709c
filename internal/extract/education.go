package extract

import "strings"

// degreeVocabulary is ordered by level, doctorate first. Matching follows
// this order, not the position of the mention in the text.
var degreeVocabulary = []string{
	"phd", "ph.d", "doctorate", "doctoral",
	"mba", "m.tech", "mtech", "m.sc", "msc", "m.e", "master",
	"b.tech", "btech", "b.sc", "bsc", "b.e", "bca", "bachelor",
	"associate", "diploma",
}

// HighestDegree returns the first matching degree token from the fixed
// vocabulary, or "" when the text mentions no degree. When a Recognizer is
// available it is consulted first and may short-circuit with an
// entity-derived phrase.
func HighestDegree(text string, rec Recognizer) string {
	if text == "" {
		return ""
	}

	if rec != nil {
		if phrase := rec.DegreePhrase(text); phrase != "" {
			return phrase
		}
	}

	lower := strings.ToLower(text)
	for _, degree := range degreeVocabulary {
		if strings.Contains(lower, degree) {
			return degree
		}
	}
	return ""
}

// degreeLevel maps a vocabulary token to its academic level so that spelled
// out and abbreviated mentions of the same level compare as related.
func degreeLevel(d string) int {
	switch d {
	case "phd", "ph.d", "doctorate", "doctoral":
		return 4
	case "mba", "m.tech", "mtech", "m.sc", "msc", "m.e", "master":
		return 3
	case "b.tech", "btech", "b.sc", "bsc", "b.e", "bca", "bachelor":
		return 2
	case "associate", "diploma":
		return 1
	}
	return 0
}

// DegreeRelated reports whether two degree mentions name the same academic
// level or are substring-related in either direction. Both empty counts as
// unrelated.
func DegreeRelated(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	a, b = strings.ToLower(a), strings.ToLower(b)
	if la, lb := degreeLevel(a), degreeLevel(b); la != 0 && la == lb {
		return true
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}
