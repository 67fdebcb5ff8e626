package similarity

import (
	"regexp"
	"strings"
)

// Engine computes a deterministic similarity score in [0,1] between two
// text spans. Implementations must be safe for concurrent use.
type Engine interface {
	Similarity(a, b string) float64
}

// Local is the default lexical engine: Jaccard overlap over significant
// unigrams blended with Jaccard overlap over adjacent bigrams, with a fixed
// bonus/floor/penalty schedule. It performs no I/O.
type Local struct {
	stopwords map[string]struct{}
}

func NewLocal() *Local {
	return &Local{stopwords: defaultStopwords}
}

var wordRe = regexp.MustCompile(`\b\w{3,}\b`)

// Similarity scores a against b. The schedule, applied in order after the
// 0.7/0.3 unigram/bigram blend: ×1.1 bonus (capped at 1) when the unigram
// intersection has at least 5 words; short-text floors of 0.3 and 0.5 when
// either span has at most 10 word tokens; zero when the intersection is
// empty; halved when the intersection is a single word out of a union
// larger than 30.
func (l *Local) Similarity(a, b string) float64 {
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0
	}

	aLower := strings.ToLower(a)
	bLower := strings.ToLower(b)

	wordsA := l.tokenSet(aLower)
	wordsB := l.tokenSet(bLower)
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	inter := intersectionSize(wordsA, wordsB)
	union := len(wordsA) + len(wordsB) - inter

	score := 0.0
	if union > 0 {
		score = float64(inter) / float64(union)
	}

	phraseScore := phraseJaccard(aLower, bLower)
	if phraseScore > 0 {
		score = score*0.7 + phraseScore*0.3
	}

	if inter >= 5 {
		score = min(score*1.1, 1.0)
	}

	if countWordTokens(aLower) <= 10 || countWordTokens(bLower) <= 10 {
		if inter >= 2 {
			score = max(score, 0.3)
		}
		if inter >= 3 {
			score = max(score, 0.5)
		}
	}

	if inter == 0 {
		score = 0
	} else if inter <= 1 && union > 30 {
		score *= 0.5
	}

	return clamp01(score)
}

// tokenSet lowercases, keeps words of length >= 3 and strips stop words.
func (l *Local) tokenSet(textLower string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(textLower, -1) {
		if _, stop := l.stopwords[w]; stop {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// phraseJaccard computes Jaccard similarity over adjacent significant-word
// bigrams, ignoring stop-word filtering: the phrase signal rewards shared
// word order, not shared vocabulary.
func phraseJaccard(aLower, bLower string) float64 {
	pa := bigramSet(aLower)
	pb := bigramSet(bLower)
	if len(pa) == 0 || len(pb) == 0 {
		return 0
	}
	inter := intersectionSize(pa, pb)
	union := len(pa) + len(pb) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func bigramSet(textLower string) map[string]struct{} {
	words := wordRe.FindAllString(textLower, -1)
	set := make(map[string]struct{}, len(words))
	for i := 0; i+1 < len(words); i++ {
		set[words[i]+" "+words[i+1]] = struct{}{}
	}
	return set
}

func countWordTokens(textLower string) int {
	return len(strings.Fields(textLower))
}

func intersectionSize(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
