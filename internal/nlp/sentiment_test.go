package nlp

import "testing"

func TestScoreSentiment(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"neutral empty", "", 0},
		{"neutral no matches", "checked my levels at noon", 0},
		{"single positive", "readings look great", 0.6},
		{"two positives", "great day, much better control", 0.7},
		{"single negative", "a terrible night", -0.6},
		{"two negatives", "terrible night, awful readings", -0.7},
		{"tie", "good day but bad night", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.ScoreSentiment(tt.in)
			if !almostEqual(got, tt.want) {
				t.Fatalf("ScoreSentiment(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScoreSentimentClamped(t *testing.T) {
	a := NewAnalyzer()

	// Seven distinct positive words would score 1.2 unclamped.
	got := a.ScoreSentiment("good great better improved excellent perfect fine")
	if got != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %v", got)
	}
}

func TestDetectEmotion(t *testing.T) {
	a := NewAnalyzer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fear", "I'm scared of these numbers", EmotionFear},
		{"sadness", "feeling hopeless about this", EmotionSadness},
		{"anger", "so frustrated with my meter", EmotionAnger},
		{"joy", "really pleased with my progress", EmotionJoy},
		{"surprise", "shocked by the result", EmotionSurprise},
		{"neutral", "logged my breakfast", EmotionNeutral},
		// "worried" (fear) wins over "sad" because fear is checked first.
		{"first match wins", "worried and sad", EmotionFear},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.DetectEmotion(tt.in); got != tt.want {
				t.Fatalf("DetectEmotion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func almostEqual(a, b float64) bool {
	diff := a - b
	return diff < 1e-9 && diff > -1e-9
}
