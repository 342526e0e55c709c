// Package extract implements the independent signal extractors that feed the
// scoring engines: skills, keywords, experience, education, and contact info.
package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// DefaultSkills is the built-in vocabulary used when the caller supplies no
// external skill list.
var DefaultSkills = []string{
	"python", "javascript", "java", "react", "node.js", "sql", "aws", "docker",
	"machine-learning", "data-analysis", "data-science", "web-development",
	"mobile-development", "devops", "agile", "scrum", "git", "api",
	"microservices", "cloud-computing", "kubernetes", "communication",
	"teamwork",
}

// Vocabulary is an immutable set of lowercase canonical skill phrases with
// precompiled boundary-safe matchers. Internal hyphens in a phrase match a
// literal hyphen, a space, or nothing, so "data-analysis" also matches
// "data analysis" and "dataanalysis".
type Vocabulary struct {
	skills   []string
	patterns []*regexp.Regexp
}

// NewVocabulary builds a vocabulary from a list of skill phrases. Phrases are
// lowercased and deduplicated; order is preserved.
func NewVocabulary(skills []string) *Vocabulary {
	v := &Vocabulary{}
	seen := make(map[string]struct{})
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		v.skills = append(v.skills, s)
		v.patterns = append(v.patterns, skillPattern(s))
	}
	return v
}

// LoadVocabulary reads a vocabulary from a CSV resource with one skill phrase
// per row, skipping the header row. It returns an error when the resource is
// missing or unreadable.
func LoadVocabulary(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open skill vocabulary %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var skills []string
	header := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse skill vocabulary %s: %w", path, err)
		}
		if header {
			header = false
			continue
		}
		if len(record) > 0 {
			skills = append(skills, record[0])
		}
	}
	return NewVocabulary(skills), nil
}

// Skills returns the vocabulary entries in load order.
func (v *Vocabulary) Skills() []string {
	out := make([]string, len(v.skills))
	copy(out, v.skills)
	return out
}

// Len returns the number of vocabulary entries.
func (v *Vocabulary) Len() int { return len(v.skills) }

// Match returns the subset of vocabulary entries that occur in text as a
// whole-word, case-insensitive match. Empty text or an empty vocabulary
// yields an empty result.
func (v *Vocabulary) Match(text string) []string {
	if v == nil || text == "" {
		return nil
	}
	var found []string
	for i, p := range v.patterns {
		if p.MatchString(text) {
			found = append(found, v.skills[i])
		}
	}
	return found
}

// MatchSkills is the simple containment parameterization: it returns the
// skills whose lowercase form occurs anywhere in the text.
func MatchSkills(text string, skills []string) []string {
	if text == "" || len(skills) == 0 {
		return nil
	}
	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]struct{})
	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		if strings.Contains(lower, s) {
			seen[s] = struct{}{}
			found = append(found, s)
		}
	}
	return found
}

// skillPattern compiles one phrase into a boundary-safe case-insensitive
// matcher. Hyphens become optional separators; word boundaries are applied
// only where the phrase starts or ends with a word character, so entries
// like "c++" stay matchable.
func skillPattern(skill string) *regexp.Regexp {
	parts := strings.Split(skill, "-")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	body := strings.Join(parts, `[-\s]?`)

	var sb strings.Builder
	sb.WriteString(`(?i)`)
	if startsWithWordChar(skill) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(body)
	if endsWithWordChar(skill) {
		sb.WriteString(`\b`)
	}
	return regexp.MustCompile(sb.String())
}

func startsWithWordChar(s string) bool {
	for _, r := range s {
		return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
	}
	return false
}

func endsWithWordChar(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}
	r := runes[len(runes)-1]
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
