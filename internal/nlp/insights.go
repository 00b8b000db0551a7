package nlp

import (
	"regexp"
	"strconv"
	"strings"
)

// Plausible glucose range in mg/dL; numbers outside it are ignored.
const (
	glucoseMin = 20
	glucoseMax = 600
)

var (
	// 2-3 digit standalone numbers, optionally with a unit. The boundaries
	// keep digits embedded in longer numbers ("1000") from matching.
	glucosePattern = regexp.MustCompile(`(?i)\b(\d{2,3})\s*(mg/dl|mmol/l|mg)?\b`)
	wordPattern    = regexp.MustCompile(`\w+`)
)

// ExtractInsights pulls the structured signals out of a message: in-range
// glucose readings, medication entities, symptom terms and urgency tiers.
// Symptoms are re-scanned from the lexicon rather than taken from the entity
// list, so a symptom suppressed elsewhere still flags here.
func (a *Analyzer) ExtractInsights(text string, entities []Entity) Insights {
	lower := strings.ToLower(text)

	insights := Insights{
		GlucoseReadings:    []int{},
		MedicationMentions: []string{},
		SymptomFlags:       []string{},
		LifestyleFactors:   []string{},
		UrgencyIndicators:  []string{},
	}

	for _, match := range glucosePattern.FindAllStringSubmatch(text, -1) {
		value, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if value >= glucoseMin && value <= glucoseMax {
			insights.GlucoseReadings = append(insights.GlucoseReadings, value)
		}
	}

	for _, e := range entities {
		if e.Label == "MEDICATION" {
			insights.MedicationMentions = append(insights.MedicationMentions, e.Text)
		}
	}

	for _, symptom := range a.symptoms() {
		if strings.Contains(lower, symptom) {
			insights.SymptomFlags = append(insights.SymptomFlags, symptom)
		}
	}

	_, insights.UrgencyIndicators = a.GradeUrgency(text)

	return insights
}

func (a *Analyzer) symptoms() []string {
	for _, cat := range a.vocab {
		if cat.Label == "SYMPTOM" {
			return cat.Terms
		}
	}
	return nil
}
