package profile

import (
	"regexp"
	"strings"
)

var knownCities = []string{
	"paris", "lyon", "marseille", "toulouse", "nice", "nantes", "strasbourg",
	"montpellier", "bordeaux", "lille", "rennes", "reims", "saint-étienne",
	"toulon", "grenoble", "dijon", "angers", "nîmes", "villeurbanne",
	"saint-denis", "le havre", "tours", "caen", "mulhouse",
	"london", "new york", "los angeles", "chicago", "houston", "philadelphia",
	"phoenix", "san antonio", "san diego", "dallas", "san jose",
	"madrid", "barcelona", "valencia", "seville", "zaragoza", "málaga",
	"murcia", "berlin", "hamburg", "munich", "cologne", "frankfurt",
	"stuttgart", "düsseldorf", "dortmund", "essen", "leipzig",
	"rome", "milan", "naples", "turin", "palermo", "genoa", "bologna",
	"florence", "casablanca", "rabat", "fès", "marrakech", "tanger",
	"agadir", "meknès", "oujda",
}

// commonFirstNames guards the generic "City, Country" pattern against
// matching truncated person names such as "Tho" out of "Thomas".
var commonFirstNames = []string{
	"sophie", "thomas", "alexandre", "marie", "pierre", "jean", "paul",
	"bernard", "martin", "lucas", "julie", "camille", "antoine", "claire",
	"nicolas", "sarah", "david", "emilie",
	"tho", "ber", "mar", "sop", "ale", "luc", "jul", "cam", "ant", "cla",
	"nic", "sar", "dav", "emi",
}

const countryAlternation = `(?:France|FR|United States|USA|UK|United Kingdom|Morocco|Maroc|MA|Espagne|Spain|Allemagne|Germany|Italie|Italy)`

var (
	countryRe       = regexp.MustCompile(`(?i)` + countryAlternation)
	commaCountryRe  = regexp.MustCompile(`(?i),\s*` + countryAlternation)
	genericCityRe   = regexp.MustCompile(`\b([A-Z][a-z]{4,}(?:\s+[A-Z][a-z]+)*),?\s+` + countryAlternation + `\b`)
	labeledCityRe   = regexp.MustCompile(`(?i)(?:ville|city|location|localisation|adresse|réside|habite|habitant)[\s:]+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	maWordedRe      = regexp.MustCompile(`(?i)[a-z]ma\b|\bma[a-z]`)
	maFrenchWordRe  = regexp.MustCompile(`(?i)\bma(?:îtrise|is|intenant|intenance)\b`)
	cityExcludeList = []string{
		"and", "ai", "programming", "student", "developer", "engineer", "web",
		"designer", "studying", "specialize", "creating", "innovative",
		"solutions", "passion", "domain", "investing", "content", "creation",
		"work", "blends", "technical", "expertise", "creative", "design",
		"deliver", "impactful", "projects", "currently", "licence", "master",
		"université", "école", "formation", "diplôme", "communication",
		"marketing", "comptabilité", "finance", "gestion", "maîtrise",
		"normes", "comptables", "françaises",
	}
)

// cityPatterns holds the regexes for one gazetteer city, compiled once
// at package load.
type cityPatterns struct {
	name        string
	word        *regexp.Regexp
	withCountry *regexp.Regexp
}

var gazetteerRes = func() []cityPatterns {
	out := make([]cityPatterns, 0, len(knownCities))
	for _, city := range knownCities {
		quoted := regexp.QuoteMeta(city)
		out = append(out, cityPatterns{
			name:        city,
			word:        regexp.MustCompile(`(?i)\b` + quoted + `\b`),
			withCountry: regexp.MustCompile(`(?i)\b` + quoted + `\b,?\s+` + countryAlternation + `\b`),
		})
	}
	return out
}()

// extractLocation resolves city and country, preferring a gazetteer hit
// with a nearby country token over pattern guesses. The two-letter MA
// country code is rejected when it sits inside a longer word.
func extractLocation(text string) (string, string) {
	// Gazetteer pass with a country token within 50 characters.
	for _, city := range gazetteerRes {
		loc := city.word.FindStringIndex(text)
		if loc == nil {
			continue
		}
		after := text[loc[1]:min(loc[1]+50, len(text))]
		if m := countryRe.FindString(after); m != "" {
			return capitalizeFirst(text[loc[0]:loc[1]]), m
		}
		if commaCountryRe.MatchString(after) {
			return capitalizeFirst(text[loc[0]:loc[1]]), countryRe.FindString(after)
		}
	}

	// Gazetteer city directly followed by a country.
	for _, city := range gazetteerRes {
		loc := city.withCountry.FindStringIndex(text)
		if loc == nil {
			continue
		}
		context := surrounding(text, loc[0], loc[1], 30)
		if partialWordMatch(context, city.name) {
			continue
		}
		country := countryRe.FindString(text[loc[0]:loc[1]])
		if strings.EqualFold(country, "ma") && maCodeIsWordPart(context) {
			continue
		}
		return capitalizeFirst(city.name), country
	}

	// Generic "City, Country" with strict validation.
	for _, m := range genericCityRe.FindAllStringSubmatchIndex(text, -1) {
		candidate := strings.TrimSpace(text[m[2]:m[3]])
		lower := strings.ToLower(candidate)
		if len(candidate) < 5 || len(candidate) >= 30 {
			continue
		}
		if isCommonFirstName(lower) {
			continue
		}
		context := surrounding(text, m[0], m[1], 30)
		if len(candidate) < 6 && !inGazetteer(lower) {
			continue
		}
		if partialWordMatch(context, lower) {
			continue
		}
		if !inGazetteer(lower) && len(strings.Fields(candidate)) > 2 {
			continue
		}
		country := countryRe.FindString(text[m[0]:m[1]])
		if strings.EqualFold(country, "ma") && maCodeIsWordPart(context) {
			continue
		}
		return candidate, country
	}

	// Labeled location line, city only.
	if m := labeledCityRe.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		lower := strings.ToLower(candidate)
		if len(candidate) >= 4 && len(candidate) < 30 &&
			len(strings.Fields(candidate)) <= 2 &&
			!containsAny(lower, cityExcludeList) && !isCommonFirstName(lower) {
			return candidate, ""
		}
	}

	return "", ""
}

func maCodeIsWordPart(context string) bool {
	return maWordedRe.MatchString(context) || maFrenchWordRe.MatchString(context)
}

// partialWordMatch reports whether word occurs in context at a word start
// but directly followed by another letter, which marks a truncated longer
// word rather than a standalone mention.
func partialWordMatch(context, word string) bool {
	if word == "" {
		return false
	}
	cl := strings.ToLower(context)
	for from := 0; ; {
		i := strings.Index(cl[from:], word)
		if i < 0 {
			return false
		}
		i += from
		startsWord := i == 0 || !isLetter(rune(cl[i-1]))
		next := i + len(word)
		if startsWord && next < len(cl) && cl[next] >= 'a' && cl[next] <= 'z' {
			return true
		}
		from = i + 1
	}
}

func isCommonFirstName(lower string) bool {
	for _, n := range commonFirstNames {
		if lower == n || strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

func inGazetteer(lower string) bool {
	for _, c := range knownCities {
		if lower == c {
			return true
		}
	}
	return false
}

func surrounding(text string, start, end, window int) string {
	lo := max(start-window, 0)
	hi := min(end+window, len(text))
	return text[lo:start] + text[end:hi]
}

func capitalizeFirst(city string) string {
	if city == "" {
		return ""
	}
	lower := strings.ToLower(city)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
