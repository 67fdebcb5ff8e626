package skills

import (
	"regexp"
	"strings"
)

// Category is one of the six technical skill buckets.
type Category string

const (
	CategoryLanguages  Category = "languages"
	CategoryFrameworks Category = "frameworks"
	CategoryTools      Category = "tools"
	CategoryCloud      Category = "cloud"
	CategoryAIData     Category = "ai_data"
	CategorySecurity   Category = "securite"
)

// Categories lists the buckets in their canonical order.
var Categories = []Category{
	CategoryLanguages,
	CategoryFrameworks,
	CategoryTools,
	CategoryCloud,
	CategoryAIData,
	CategorySecurity,
}

type rule struct {
	category Category
	name     *regexp.Regexp
	keywords []string
}

// rules are evaluated in order; the first match wins. The name pattern is
// checked against the skill itself, the keywords against the skill plus a
// bounded context window.
var rules = []rule{
	{
		category: CategoryLanguages,
		name:     regexp.MustCompile(`(?i)\b(python|javascript|java|php|ruby|go|golang|rust|swift|kotlin|typescript|scala|matlab|c\+\+|c#|html|css|sql)\b`),
		keywords: []string{"programming", "language", "langage", "syntax"},
	},
	{
		category: CategoryFrameworks,
		name:     regexp.MustCompile(`(?i)\b(react|vue|angular|node|django|flask|spring|express|laravel|symfony|rails|asp\.net|wordpress|woocommerce|drupal|joomla|shopify)\b`),
		keywords: []string{"framework", "library", "bibliothèque"},
	},
	{
		category: CategoryCloud,
		name:     regexp.MustCompile(`(?i)\b(aws|azure|gcp|google cloud|heroku|digitalocean|oracle cloud)\b`),
		keywords: []string{"cloud", "infrastructure", "platform"},
	},
	{
		category: CategoryAIData,
		name:     regexp.MustCompile(`(?i)\b(tensorflow|pytorch|keras|pandas|numpy|scikit-learn|spark|hadoop|tableau|power bi|machine learning|deep learning|data science|big data)\b`),
		keywords: []string{"machine learning", "data science", "neural", "analytics"},
	},
	{
		category: CategorySecurity,
		name:     regexp.MustCompile(`(?i)\b(owasp|pentest|metasploit|burp suite|wireshark|nmap|ssl|tls|vpn)\b`),
		keywords: []string{"security", "sécurité", "cybersecurity", "cybersécurité", "vulnerability"},
	},
	{
		category: CategoryTools,
		name:     regexp.MustCompile(`(?i)\b(git|docker|kubernetes|jenkins|gitlab|github|jira|confluence|postman|swagger)\b`),
		keywords: []string{"tool", "outil", "software", "utility"},
	},
}

const contextWindow = 200

// Classify buckets a flat skill into one of the six categories. The skill
// string is matched against each rule's name pattern first; when no name
// matches, the rule keywords are checked against the skill plus the leading
// context window. Unmatched skills default to tools.
func Classify(skill, context string, cat *Catalog) (Category, bool) {
	if cat == nil {
		cat = DefaultCatalog()
	}
	lower := strings.ToLower(strings.TrimSpace(skill))
	if lower == "" {
		return "", false
	}
	if _, drop := cat.NonSkills[lower]; drop {
		return "", false
	}
	if bareYearRe.MatchString(lower) {
		return "", false
	}

	for _, r := range rules {
		if r.name.MatchString(lower) {
			return r.category, true
		}
	}

	window := strings.ToLower(context)
	if len(window) > contextWindow {
		window = window[:contextWindow]
	}
	haystack := lower + " " + window
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(haystack, kw) {
				return r.category, true
			}
		}
	}

	return CategoryTools, true
}

// ClassifyAll extracts flat skills from text and distributes them over the
// six buckets, dropping stoplisted tokens and preserving per-bucket order.
func ClassifyAll(text string, cat *Catalog) map[Category][]string {
	out := make(map[Category][]string, len(Categories))
	for _, c := range Categories {
		out[c] = []string{}
	}
	for _, skill := range Extract(text, cat) {
		c, ok := Classify(skill, text, cat)
		if !ok {
			continue
		}
		if !containsFold(out[c], skill) {
			out[c] = append(out[c], skill)
		}
	}
	return out
}

func containsFold(list []string, s string) bool {
	for _, it := range list {
		if strings.EqualFold(it, s) {
			return true
		}
	}
	return false
}
