package nlp

import (
	"reflect"
	"strings"
	"testing"
)

var sampleMessages = []string{
	"",
	"My blood sugar was 250 this morning and I'm feeling really worried",
	"Emergency! My blood sugar is 400 and I feel very sick",
	"Thanks, I feel great today",
	"what should I eat before a workout?",
	"1000 steps and 5 units later, nothing changed",
	"bg 55 and dropping, help",
	"😀 unicode ünïcode 数字 and punctuation!!!",
}

func TestAnalyzeBoundedScores(t *testing.T) {
	a := NewAnalyzer()
	for _, msg := range sampleMessages {
		result := a.Analyze(msg, nil)
		if result.SentimentScore < -1 || result.SentimentScore > 1 {
			t.Fatalf("sentiment out of range for %q: %v", msg, result.SentimentScore)
		}
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Fatalf("confidence out of range for %q: %v", msg, result.Confidence)
		}
		if len(result.Recommendations) == 0 {
			t.Fatalf("empty recommendations for %q", msg)
		}
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := NewAnalyzer()
	for _, msg := range sampleMessages {
		first := a.Analyze(msg, nil)
		second := a.Analyze(msg, nil)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("analysis of %q is not deterministic:\n%+v\n%+v", msg, first, second)
		}
	}
}

func TestAnalyzeWorriedHighReading(t *testing.T) {
	a := NewAnalyzer()
	result := a.Analyze("My blood sugar was 250 this morning and I'm feeling really worried", nil)

	if !reflect.DeepEqual(result.Insights.GlucoseReadings, []int{250}) {
		t.Fatalf("glucose readings = %v", result.Insights.GlucoseReadings)
	}
	if !containsWord(result.Insights.UrgencyIndicators, UrgencyHigh) {
		t.Fatalf("expected high urgency indicator from 'worried', got %v", result.Insights.UrgencyIndicators)
	}
	// "blood sugar" is a MEASUREMENT lexicon term, so the measurement rule
	// fires before the general-chat default.
	if result.Intent != IntentMeasurementQuery {
		t.Fatalf("intent = %q, want %q", result.Intent, IntentMeasurementQuery)
	}
	if result.Emotion != EmotionFear {
		t.Fatalf("emotion = %q, want %q", result.Emotion, EmotionFear)
	}
}

func TestAnalyzeEmergency(t *testing.T) {
	a := NewAnalyzer()
	result := a.Analyze("Emergency! My blood sugar is 400 and I feel very sick", nil)

	if result.UrgencyLevel != UrgencyCritical {
		t.Fatalf("urgency = %q, want critical", result.UrgencyLevel)
	}
	if !reflect.DeepEqual(result.Insights.GlucoseReadings, []int{400}) {
		t.Fatalf("glucose readings = %v", result.Insights.GlucoseReadings)
	}
	if !result.ActionNeeded() {
		t.Fatal("expected ActionNeeded for a critical message")
	}
}

func TestAnalyzeGratitude(t *testing.T) {
	a := NewAnalyzer()
	result := a.Analyze("Thanks, I feel great today", nil)

	if result.Intent != IntentGratitude {
		t.Fatalf("intent = %q, want gratitude", result.Intent)
	}
	if result.Emotion != EmotionNeutral {
		t.Fatalf("emotion = %q, want neutral", result.Emotion)
	}
	if result.SentimentScore <= 0 {
		t.Fatalf("sentiment = %v, want positive", result.SentimentScore)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := NewAnalyzer()
	result := a.Analyze("", nil)

	if result.CleanedText != "" {
		t.Fatalf("cleaned text = %q", result.CleanedText)
	}
	if len(result.Entities) != 0 || len(result.Keywords) != 0 {
		t.Fatalf("expected empty entities and keywords, got %+v", result)
	}
	if len(result.Insights.GlucoseReadings) != 0 || len(result.Insights.UrgencyIndicators) != 0 {
		t.Fatalf("expected empty insights, got %+v", result.Insights)
	}
	if result.UrgencyLevel != UrgencyLow {
		t.Fatalf("urgency = %q, want low", result.UrgencyLevel)
	}
	if !reflect.DeepEqual(result.Recommendations, fallbackRecommendations) {
		t.Fatalf("recommendations = %v, want fallback list", result.Recommendations)
	}
	if !almostEqual(result.Confidence, 0.85) {
		t.Fatalf("confidence = %v, want base 0.85", result.Confidence)
	}
}

func TestAnalyzeUrgencyMonotonic(t *testing.T) {
	a := NewAnalyzer()

	// A critical keyword must dominate no matter which lower tiers match.
	messages := []string{
		"emergency",
		"emergency with very high readings",
		"emergency, some mild and very concerning symptoms",
	}
	for _, msg := range messages {
		result := a.Analyze(msg, nil)
		if result.UrgencyLevel != UrgencyCritical {
			t.Fatalf("urgency for %q = %q, want critical", msg, result.UrgencyLevel)
		}
	}
}

func TestAnalyzeConfidenceBonuses(t *testing.T) {
	a := NewAnalyzer()

	// Entities plus an in-range reading earn both bonuses.
	result := a.Analyze("glucose was 120", nil)
	if !almostEqual(result.Confidence, 1.0) {
		t.Fatalf("confidence = %v, want 1.0", result.Confidence)
	}

	// Entities only.
	result = a.Analyze("thinking about my diet", nil)
	if !almostEqual(result.Confidence, 0.95) {
		t.Fatalf("confidence = %v, want 0.95", result.Confidence)
	}
}

func TestAnalyzeExpandsAbbreviations(t *testing.T) {
	a := NewAnalyzer()
	result := a.Analyze("bg was 55", nil)

	if result.CleanedText != "blood glucose was 55" {
		t.Fatalf("cleaned text = %q", result.CleanedText)
	}
	if !strings.Contains(strings.Join(result.Keywords, " "), "glucose") {
		t.Fatalf("expected expanded keyword, got %v", result.Keywords)
	}
}
