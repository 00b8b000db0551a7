package nlp

// Emotion labels returned by DetectEmotion.
const (
	EmotionFear     = "fear"
	EmotionSadness  = "sadness"
	EmotionAnger    = "anger"
	EmotionJoy      = "joy"
	EmotionSurprise = "surprise"
	EmotionNeutral  = "neutral"
)

// Intent labels returned by ClassifyIntent.
const (
	IntentQuestion          = "question"
	IntentAdviceRequest     = "advice_request"
	IntentMedicationInquiry = "medication_inquiry"
	IntentMeasurementQuery  = "measurement_query"
	IntentGratitude         = "gratitude"
	IntentGeneralChat       = "general_chat"
)

// Urgency levels, lowest to highest.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Entity is a lexicon term found in the message, tagged with its category.
type Entity struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Insights collects the structured extractions from a message. Glucose
// readings are bounded to [20, 600]. LifestyleFactors is carried for response
// compatibility but no rule populates it.
type Insights struct {
	GlucoseReadings    []int    `json:"glucose_readings"`
	MedicationMentions []string `json:"medication_mentions"`
	SymptomFlags       []string `json:"symptom_flags"`
	LifestyleFactors   []string `json:"lifestyle_factors"`
	UrgencyIndicators  []string `json:"urgency_indicators"`
}

// Result is the full analysis of one chat message. It is built fresh per
// message and never mutated afterwards.
type Result struct {
	OriginalText    string   `json:"original_text"`
	CleanedText     string   `json:"cleaned_text"`
	SentimentScore  float64  `json:"sentiment_score"`
	Emotion         string   `json:"emotion"`
	Confidence      float64  `json:"confidence"`
	Entities        []Entity `json:"entities"`
	Keywords        []string `json:"keywords"`
	Intent          string   `json:"intent"`
	UrgencyLevel    string   `json:"urgency_level"`
	Insights        Insights `json:"diabetes_specific_insights"`
	Recommendations []string `json:"recommendations"`
}

// ActionNeeded reports whether the message should be escalated.
func (r Result) ActionNeeded() bool {
	return r.UrgencyLevel == UrgencyHigh || r.UrgencyLevel == UrgencyCritical
}
