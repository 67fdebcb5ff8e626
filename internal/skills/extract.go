package skills

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxFlatSkills = 50

// Extract mines a deduplicated candidate skill list from free text by
// unioning independent detectors: technical acronyms, dotted technology
// names, longer uppercase tokens, a fixed phrase catalogue and a scan of
// lines following skill-section headers. Dedup key is the lowercased
// trimmed string; entries shorter than 3 characters are dropped. Output is
// capped at 50 entries in first-seen order.
func Extract(text string, cat *Catalog) []string {
	if cat == nil {
		cat = DefaultCatalog()
	}
	found := make([]string, 0, 64)
	found = append(found, extractPatterns(text, cat)...)
	found = append(found, extractSectionLines(text, cat)...)
	return Dedup(found, maxFlatSkills)
}

// extractPatterns detects skills by lexical shape.
func extractPatterns(text string, cat *Catalog) []string {
	out := make([]string, 0, 32)

	for _, acro := range acronymRe.FindAllString(text, -1) {
		if _, skip := cat.AcronymStoplist[acro]; skip {
			continue
		}
		out = append(out, acro)
	}

	out = append(out, dottedTechRe.FindAllString(text, -1)...)

	for _, tok := range longUppercase.FindAllString(text, -1) {
		if len(tok) < 3 {
			continue
		}
		upper := strings.ToUpper(tok)
		if _, skip := cat.CommonUppercase[upper]; skip {
			continue
		}
		if _, skip := cat.AcronymStoplist[upper]; skip {
			continue
		}
		out = append(out, tok)
	}

	// cases.Caser carries transformer state, so one is built per call
	// instead of being shared across goroutines.
	titleCaser := cases.Title(language.Und)
	lower := strings.ToLower(text)
	for _, phrase := range cat.TechPhrases {
		if strings.Contains(lower, phrase) {
			out = append(out, titleCaser.String(phrase))
		}
	}

	return out
}

// extractSectionLines collects comma/bullet separated candidates from lines
// following "skills/technologies/tools"-style headers.
func extractSectionLines(text string, cat *Catalog) []string {
	out := make([]string, 0, 16)
	for _, re := range []*regexp.Regexp{sectionLineRe, abilityLineRe, masteryLineRe} {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, candidate := range skillDelimiter.Split(m[1], -1) {
				candidate = strings.TrimSpace(candidate)
				if len(candidate) < 2 || len(candidate) > 50 {
					continue
				}
				if _, common := cat.CommonWords[strings.ToLower(candidate)]; common {
					continue
				}
				out = append(out, candidate)
			}
		}
	}
	return out
}

// Dedup lowercase-trims each skill for identity, keeps the first display
// form seen, drops entries shorter than 3 characters and caps the result.
// All-lowercase entries are normalized to an initial capital for display.
func Dedup(in []string, limit int) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if len(key) < 3 {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if s == key {
			s = capitalize(s)
		}
		out = append(out, s)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
