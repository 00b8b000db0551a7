package nlp

import "strings"

// ScoreSentiment counts which polarity words appear in the message and maps
// the imbalance to a score in [-1, 1]. Ties, including no matches at all,
// score 0.
func (a *Analyzer) ScoreSentiment(text string) float64 {
	lower := strings.ToLower(text)

	positive := 0
	for _, word := range a.positive {
		if strings.Contains(lower, word) {
			positive++
		}
	}
	negative := 0
	for _, word := range a.negative {
		if strings.Contains(lower, word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return clamp(0.5+0.1*float64(positive), -1, 1)
	case negative > positive:
		return clamp(-0.5-0.1*float64(negative), -1, 1)
	default:
		return 0
	}
}

// DetectEmotion returns the first emotion whose keyword set matches the
// message, or neutral. First match wins; rule order is the tie-break.
func (a *Analyzer) DetectEmotion(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range a.emotions {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Emotion
			}
		}
	}
	return EmotionNeutral
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
