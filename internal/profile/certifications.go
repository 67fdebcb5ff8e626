package profile

import (
	"regexp"
	"strings"
)

var (
	certHeaderRe = regexp.MustCompile(`(?i)certification|certificat|certificate|\bcert\b|aws certified|azure certified|google cloud|oracle certified`)
	certYearRe   = regexp.MustCompile(`\d{4}`)
)

var certOrgKeywords = []string{"aws", "microsoft", "google", "oracle", "cisco"}

// ExtractCertifications collects certification blocks, five at most.
func ExtractCertifications(lines []string) []Certification {
	var certs []Certification
	var current Certification
	inBlock := false

	flush := func() {
		if current.Name != "" {
			certs = append(certs, current)
		}
		current = Certification{}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		if certHeaderRe.MatchString(lower) {
			flush()
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}

		switch {
		case current.Name == "" && len(line) > 5:
			current.Name = line
		case current.Org == "" && containsAny(lower, certOrgKeywords):
			current.Org = line
		default:
			if m := certYearRe.FindString(line); m != "" {
				current.Year = m
			}
		}
	}
	flush()

	if len(certs) > 5 {
		certs = certs[:5]
	}
	return certs
}
