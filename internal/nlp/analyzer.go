// Package nlp implements the rule-based chat analysis pipeline: lexicon
// entity extraction, sentiment and emotion scoring, intent classification,
// urgency grading and recommendation generation.
package nlp

import "log"

// Confidence heuristic: a fixed base plus small bonuses when entities or
// glucose readings were found, clamped to [0, 1].
const (
	confidenceBase         = 0.85
	confidenceEntityBonus  = 0.1
	confidenceReadingBonus = 0.05
)

// Analyzer runs the analysis pipeline. The tables it holds are fixed at
// construction and never mutated, so a single instance is safe for
// concurrent use across requests.
type Analyzer struct {
	vocab    []termCategory
	emotions []emotionRule
	urgency  []urgencyTier
	positive []string
	negative []string
	abbrevs  []abbreviation
}

// NewAnalyzer builds an analyzer over the built-in diabetes lexicons.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		vocab:    vocabCategories,
		emotions: emotionRules,
		urgency:  urgencyTiers,
		positive: positiveWords,
		negative: negativeWords,
		abbrevs:  abbreviations,
	}
}

// Analyze runs the full pipeline over one message. It is pure and stateless:
// identical input always produces identical output. Any internal panic is
// contained here and converted into the neutral fallback result, so analysis
// can never fail the caller.
func (a *Analyzer) Analyze(text string, _ map[string]string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analysis failed, returning fallback: %v", r)
			result = fallbackResult(text)
		}
	}()

	cleaned := a.Normalize(text)
	entities := a.ExtractEntities(cleaned)
	sentiment := a.ScoreSentiment(cleaned)
	emotion := a.DetectEmotion(cleaned)
	insights := a.ExtractInsights(cleaned, entities)
	intent := a.ClassifyIntent(cleaned, entities)
	urgency, _ := a.GradeUrgency(cleaned)

	confidence := confidenceBase
	if len(entities) > 0 {
		confidence += confidenceEntityBonus
	}
	if len(insights.GlucoseReadings) > 0 {
		confidence += confidenceReadingBonus
	}

	return Result{
		OriginalText:    text,
		CleanedText:     cleaned,
		SentimentScore:  clamp(sentiment, -1, 1),
		Emotion:         emotion,
		Confidence:      clamp(confidence, 0, 1),
		Entities:        entities,
		Keywords:        a.Keywords(cleaned),
		Intent:          intent,
		UrgencyLevel:    urgency,
		Insights:        insights,
		Recommendations: a.Recommend(insights, intent, emotion),
	}
}

func fallbackResult(text string) Result {
	return Result{
		OriginalText:   text,
		CleanedText:    text,
		SentimentScore: 0,
		Emotion:        EmotionNeutral,
		Confidence:     0.5,
		Entities:       []Entity{},
		Keywords:       []string{},
		Intent:         IntentGeneralChat,
		UrgencyLevel:   UrgencyLow,
		Insights: Insights{
			GlucoseReadings:    []int{},
			MedicationMentions: []string{},
			SymptomFlags:       []string{},
			LifestyleFactors:   []string{},
			UrgencyIndicators:  []string{},
		},
		Recommendations: []string{"I'm having trouble analyzing this message. Please try again or consult a professional."},
	}
}
