package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

var (
	emailRe     = regexp.MustCompile(`[A-Za-z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+`)
	digitRunRe  = regexp.MustCompile(`\b\d{10,15}\b`)
	usPhoneRe   = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)
	socialRe    = regexp.MustCompile(`(?i)linkedin\.com|github\.com|portfolio`)
	locationRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z]{2}\b`),       // City, ST
		regexp.MustCompile(`\b[A-Z][a-z]+,\s*[A-Z][a-z]+\b`),    // City, Country
	}
)

// Contact detects the independent contact-presence signals in resume text.
// A >=10 digit numeric run or a formatted US number counts as a phone.
func Contact(text string) types.ContactInfo {
	info := types.ContactInfo{
		HasEmail:  emailRe.MatchString(text),
		HasPhone:  digitRunRe.MatchString(text) || usPhoneRe.MatchString(text),
		HasSocial: socialRe.MatchString(text),
		Name:      firstLineName(text),
	}
	for _, re := range locationRes {
		if re.MatchString(text) {
			info.HasLocation = true
			break
		}
	}
	return info
}

// firstLineName applies the first-line heuristic: the first one or two words
// of the first non-empty line.
func firstLineName(text string) string {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}
		if len(words) >= 2 {
			return words[0] + " " + words[1]
		}
		return words[0]
	}
	return ""
}
