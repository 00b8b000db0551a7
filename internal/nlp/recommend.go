package nlp

// highReadingThreshold is the mg/dL value above which a reading earns its own
// advisory.
const highReadingThreshold = 180

var fallbackRecommendations = []string{
	"Keep monitoring your health and maintain a healthy lifestyle.",
}

// Recommend maps the extracted insights plus intent and emotion to a short
// advice list. Rules are additive, not exclusive: a message can collect every
// advisory at once. An empty result is replaced by the monitoring fallback.
func (a *Analyzer) Recommend(insights Insights, intent, emotion string) []string {
	recs := []string{}

	if intent == IntentMedicationInquiry {
		recs = append(recs, "Consult your doctor before making any medication changes.")
	}
	for _, reading := range insights.GlucoseReadings {
		if reading > highReadingThreshold {
			recs = append(recs, "Consider checking with your healthcare provider about high readings.")
			break
		}
	}
	if len(insights.SymptomFlags) > 0 {
		recs = append(recs, "Discuss these symptoms with your healthcare provider.")
	}
	if emotion == EmotionFear || emotion == EmotionSadness {
		recs = append(recs, "Managing diabetes can feel overwhelming; consider reaching out to a support group or counselor.")
	}

	if len(recs) == 0 {
		recs = append(recs, fallbackRecommendations...)
	}
	return recs
}
