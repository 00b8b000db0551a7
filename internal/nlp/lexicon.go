package nlp

// termCategory maps an entity label to its trigger terms. Slice order is the
// match order: entities come out medication-first, lifestyle-last.
type termCategory struct {
	Label string
	Terms []string
}

type emotionRule struct {
	Emotion  string
	Keywords []string
}

type urgencyTier struct {
	Level    string
	Keywords []string
}

var (
	medicationTerms = []string{
		"metformin", "insulin", "glipizide", "glyburide", "januvia", "victoza",
		"ozempic", "trulicity", "invokana", "farxiga", "jardiance", "humalog",
		"novolog", "lantus", "levemir", "tresiba", "toujeo", "apidra",
	}
	symptomTerms = []string{
		"thirsty", "tired", "fatigue", "blurry vision", "frequent urination",
		"hunger", "weight loss", "weight gain", "slow healing", "infections",
		"numbness", "tingling", "dry skin", "headaches", "dizziness",
	}
	measurementTerms = []string{
		"glucose", "sugar", "bg", "blood sugar", "hba1c", "a1c", "ketones",
		"bmi", "weight", "blood pressure", "bp", "cholesterol", "triglycerides",
	}
	lifestyleTerms = []string{
		"diet", "exercise", "workout", "walking", "running", "swimming",
		"cycling", "yoga", "meditation", "sleep", "stress", "meal plan",
		"carb counting", "portion control", "fasting",
	}

	vocabCategories = []termCategory{
		{Label: "MEDICATION", Terms: medicationTerms},
		{Label: "SYMPTOM", Terms: symptomTerms},
		{Label: "MEASUREMENT", Terms: measurementTerms},
		{Label: "LIFESTYLE", Terms: lifestyleTerms},
	}

	// First matching rule wins, so the order below is the tie-break.
	emotionRules = []emotionRule{
		{Emotion: EmotionFear, Keywords: []string{"scared", "afraid", "worried", "anxious", "terrified", "panic"}},
		{Emotion: EmotionSadness, Keywords: []string{"sad", "depressed", "down", "blue", "miserable", "hopeless"}},
		{Emotion: EmotionAnger, Keywords: []string{"angry", "frustrated", "mad", "irritated", "furious", "annoyed"}},
		{Emotion: EmotionJoy, Keywords: []string{"happy", "excited", "joyful", "glad", "pleased", "delighted"}},
		{Emotion: EmotionSurprise, Keywords: []string{"surprised", "shocked", "amazed", "astonished", "startled"}},
	}

	urgencyTiers = []urgencyTier{
		{Level: UrgencyCritical, Keywords: []string{"emergency", "urgent", "critical", "severe", "danger", "help", "911"}},
		{Level: UrgencyHigh, Keywords: []string{"high", "very", "extremely", "alarming", "concerning", "worried"}},
		{Level: UrgencyMedium, Keywords: []string{"moderate", "some", "slightly", "mild", "uncomfortable"}},
	}

	positiveWords = []string{"good", "great", "better", "improved", "excellent", "perfect", "happy", "fine"}
	negativeWords = []string{"bad", "worst", "terrible", "awful", "poor", "worse", "sad", "angry"}
)
