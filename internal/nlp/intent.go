package nlp

import "strings"

var (
	questionWords  = []string{"what", "how", "why", "when"}
	adviceWords    = []string{"help", "advice", "recommend"}
	gratitudeWords = []string{"thank", "thanks", "appreciate"}
)

// ClassifyIntent resolves the message to a single intent. Rules run in a
// fixed priority order and the first hit wins: question words beat advice
// words beat medication entities beat measurement entities beat gratitude.
func (a *Analyzer) ClassifyIntent(text string, entities []Entity) string {
	lower := strings.ToLower(text)

	if containsAny(lower, questionWords) {
		return IntentQuestion
	}
	if containsAny(lower, adviceWords) {
		return IntentAdviceRequest
	}
	if hasLabel(entities, "MEDICATION") {
		return IntentMedicationInquiry
	}
	if hasLabel(entities, "MEASUREMENT") {
		return IntentMeasurementQuery
	}
	if containsAny(lower, gratitudeWords) {
		return IntentGratitude
	}
	return IntentGeneralChat
}

// GradeUrgency scans every tier independently and returns the matched tier
// names plus the highest severity among them. A message can trip several
// tiers at once; no keyword match at all grades low.
func (a *Analyzer) GradeUrgency(text string) (level string, indicators []string) {
	lower := strings.ToLower(text)

	indicators = []string{}
	for _, tier := range a.urgency {
		if containsAny(lower, tier.Keywords) {
			indicators = append(indicators, tier.Level)
		}
	}

	level = UrgencyLow
	for _, candidate := range []string{UrgencyCritical, UrgencyHigh, UrgencyMedium} {
		for _, hit := range indicators {
			if hit == candidate {
				return candidate, indicators
			}
		}
	}
	return level, indicators
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func hasLabel(entities []Entity, label string) bool {
	for _, e := range entities {
		if e.Label == label {
			return true
		}
	}
	return false
}
