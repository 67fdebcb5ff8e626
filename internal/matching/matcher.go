// Package matching partitions a job's required skills into the ones a
// candidate holds and the ones they lack.
package matching

import (
	"regexp"
	"strings"

	"cv-match/internal/similarity"
)

var skillWordRe = regexp.MustCompile(`\b\w{3,}\b`)

// semanticMatchThreshold is deliberately high so the similarity tier
// only fires on near-synonyms.
const semanticMatchThreshold = 0.75

// Matcher compares candidate skills against required skills with three
// tiers per requirement: exact case-insensitive match, word overlap of
// at least half the requirement's words, then text similarity.
type Matcher struct {
	engine similarity.Engine
}

func New(engine similarity.Engine) *Matcher {
	if engine == nil {
		engine = similarity.NewLocal()
	}
	return &Matcher{engine: engine}
}

// Partition returns the required skills the candidate has and the ones
// missing, preserving requirement order. Every required skill lands in
// exactly one of the two lists.
func (m *Matcher) Partition(candidateSkills, requiredSkills []string) (matching, missing []string) {
	if len(requiredSkills) == 0 {
		return nil, nil
	}

	candidateLower := make([]string, len(candidateSkills))
	for i, s := range candidateSkills {
		candidateLower[i] = strings.ToLower(s)
	}

	for _, required := range requiredSkills {
		if m.holds(required, candidateSkills, candidateLower) {
			matching = append(matching, required)
		} else {
			missing = append(missing, required)
		}
	}
	return matching, missing
}

func (m *Matcher) holds(required string, candidateSkills, candidateLower []string) bool {
	requiredLower := strings.ToLower(required)

	for _, cv := range candidateLower {
		if cv == requiredLower {
			return true
		}
	}

	requiredWords := wordSet(requiredLower)
	if len(requiredWords) > 0 {
		for _, cv := range candidateLower {
			cvWords := wordSet(cv)
			if len(cvWords) == 0 {
				continue
			}
			overlap := 0
			for w := range requiredWords {
				if _, ok := cvWords[w]; ok {
					overlap++
				}
			}
			if float64(overlap)/float64(len(requiredWords)) >= 0.5 {
				return true
			}
		}
	}

	for _, cv := range candidateSkills {
		if m.engine.Similarity(required, cv) > semanticMatchThreshold {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]struct{} {
	words := skillWordRe.FindAllString(s, -1)
	if len(words) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
