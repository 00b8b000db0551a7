package nlp

import (
	"sort"
	"strconv"
	"strings"
)

// Matched lexicon terms all carry the same fixed confidence; the extractor
// does no ranking or overlap resolution.
const entityConfidence = 0.9

// ExtractEntities scans the message against every vocabulary category and
// returns one entity per matching term. A term listed under two categories
// yields two entities; output order follows category order, then term order.
func (a *Analyzer) ExtractEntities(text string) []Entity {
	lower := strings.ToLower(text)
	entities := []Entity{}
	for _, cat := range a.vocab {
		for _, term := range cat.Terms {
			if strings.Contains(lower, term) {
				entities = append(entities, Entity{
					Text:       term,
					Label:      cat.Label,
					Confidence: entityConfidence,
				})
			}
		}
	}
	return entities
}

// Keywords returns the deduplicated vocabulary and emotion words found in the
// message, plus any bare numbers that look like glucose values. The result is
// sorted; callers must not rely on any other ordering.
func (a *Analyzer) Keywords(text string) []string {
	seen := map[string]bool{}
	for _, word := range wordPattern.FindAllString(strings.ToLower(text), -1) {
		if seen[word] {
			continue
		}
		if n, err := strconv.Atoi(word); err == nil {
			if n >= glucoseMin && n <= glucoseMax {
				seen[word] = true
			}
			continue
		}
		if a.isVocabWord(word) {
			seen[word] = true
		}
	}
	keywords := make([]string, 0, len(seen))
	for word := range seen {
		keywords = append(keywords, word)
	}
	sort.Strings(keywords)
	return keywords
}

// isVocabWord reports whether the word occurs inside any lexicon term,
// category name or emotion keyword. Substring containment keeps multi-word
// terms discoverable word by word ("blood sugar" matches both "blood" and
// "sugar").
func (a *Analyzer) isVocabWord(word string) bool {
	for _, cat := range a.vocab {
		if strings.Contains(strings.ToLower(cat.Label), word) {
			return true
		}
		for _, term := range cat.Terms {
			if strings.Contains(term, word) {
				return true
			}
		}
	}
	for _, rule := range a.emotions {
		if strings.Contains(rule.Emotion, word) {
			return true
		}
		for _, kw := range rule.Keywords {
			if strings.Contains(kw, word) {
				return true
			}
		}
	}
	return false
}
