package profile

import (
	"regexp"
	"strings"
)

const (
	LevelFluent       = "Fluent"
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
	LevelBeginner     = "Beginner"
)

// spokenLanguages pairs a canonical name with the spellings and native
// scripts it may appear under. Order fixes output order.
var spokenLanguages = []struct {
	name     string
	keywords []string
}{
	{"French", []string{"français", "french", "francais", "francophone"}},
	{"English", []string{"anglais", "english", "anglophone"}},
	{"Spanish", []string{"espagnol", "spanish", "español"}},
	{"German", []string{"allemand", "german", "deutsch"}},
	{"Italian", []string{"italien", "italian", "italiano"}},
	{"Arabic", []string{"arabe", "arabic", "عربي"}},
	{"Chinese", []string{"chinois", "chinese", "中文", "mandarin"}},
	{"Japanese", []string{"japonais", "japanese", "日本語"}},
	{"Portuguese", []string{"portugais", "portuguese", "português"}},
	{"Russian", []string{"russe", "russian", "русский"}},
	{"Dutch", []string{"néerlandais", "dutch", "nederlands"}},
	{"Polish", []string{"polonais", "polish", "polski"}},
	{"Turkish", []string{"turc", "turkish", "türkçe"}},
	{"Korean", []string{"coréen", "korean", "한국어"}},
	{"Hindi", []string{"hindi", "हिंदी"}},
	{"Hebrew", []string{"hébreu", "hebrew", "עברית"}},
	{"Swedish", []string{"suédois", "swedish", "svenska"}},
	{"Norwegian", []string{"norvégien", "norwegian", "norsk"}},
	{"Danish", []string{"danois", "danish", "dansk"}},
	{"Greek", []string{"grec", "greek", "ελληνικά"}},
}

var languageLevelRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)natif|native|maternel|mother tongue`),
	regexp.MustCompile(`(?i)courant|fluent|avancé|advanced`),
	regexp.MustCompile(`(?i)intermédiaire|intermediate|moyen`),
	regexp.MustCompile(`(?i)débutant|beginner|basic`),
	regexp.MustCompile(`(?i)\b(?:A1|A2|B1|B2|C1|C2)\b`),
}

// proficiencyLadder is checked top down; the first level whose pattern
// co-occurs with the language name wins.
var proficiencyLadder = []struct {
	level    string
	keywords []string
}{
	{LevelFluent, []string{"fluent", "natif", "native", "courant"}},
	{LevelAdvanced, []string{"avancé", "advanced", "c1", "c2"}},
	{LevelIntermediate, []string{"intermédiaire", "intermediate", "b1", "b2"}},
	{LevelBeginner, []string{"débutant", "beginner", "a1", "a2"}},
}

// ExtractLanguages finds spoken languages anywhere in the document, plus
// any named near a proficiency marker, and attaches a CEFR-style level
// when one follows the language on the same line.
func ExtractLanguages(text string, lines []string) []Language {
	lowerText := strings.ToLower(text)

	var found []string
	has := func(name string) bool { return containsString(found, name) }

	for _, lang := range spokenLanguages {
		for _, kw := range lang.keywords {
			if strings.Contains(lowerText, kw) {
				found = append(found, lang.name)
				break
			}
		}
	}

	// Level markers without a direct language mention pull in languages
	// from the two lines on either side.
	for i, line := range lines {
		lower := strings.ToLower(line)
		marked := false
		for _, re := range languageLevelRes {
			if re.MatchString(lower) {
				marked = true
				break
			}
		}
		if !marked {
			continue
		}
		lo := max(i-2, 0)
		hi := min(i+3, len(lines))
		window := strings.ToLower(strings.Join(lines[lo:hi], " "))
		for _, lang := range spokenLanguages {
			if has(lang.name) {
				continue
			}
			for _, kw := range lang.keywords {
				if strings.Contains(window, kw) {
					found = append(found, lang.name)
					break
				}
			}
		}
	}

	result := make([]Language, 0, len(found))
	for _, name := range found {
		result = append(result, Language{Name: name, Level: languageLevel(name, lowerText)})
	}
	return result
}

func languageLevel(name, lowerText string) string {
	var spellings []string
	for _, lang := range spokenLanguages {
		if lang.name == name {
			spellings = lang.keywords
			break
		}
	}
	for _, rung := range proficiencyLadder {
		for _, spelling := range spellings {
			for _, kw := range rung.keywords {
				re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(spelling) + `.*` + regexp.QuoteMeta(kw))
				if re.MatchString(lowerText) {
					return rung.level
				}
			}
		}
	}
	return LevelUnspecified
}
