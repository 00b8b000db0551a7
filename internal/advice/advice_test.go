package advice

import (
	"strings"
	"testing"
)

func TestMeal(t *testing.T) {
	base := Meal(0, false)
	if len(base) != 3 {
		t.Fatalf("expected base guidance, got %v", base)
	}

	high := Meal(250, true)
	if len(high) <= len(base) || !strings.Contains(high[0], "high") {
		t.Fatalf("expected high-reading guidance first, got %v", high)
	}

	low := Meal(55, true)
	if len(low) <= len(base) || !strings.Contains(low[0], "low") {
		t.Fatalf("expected low-reading guidance first, got %v", low)
	}

	normal := Meal(110, true)
	if len(normal) != len(base) {
		t.Fatalf("in-range reading should return base guidance, got %v", normal)
	}
}

func TestExerciseAndMedication(t *testing.T) {
	if len(Exercise()) == 0 || len(Medication()) == 0 {
		t.Fatal("guidance lists must not be empty")
	}
}

func TestEducationTopics(t *testing.T) {
	topics := Education()
	if len(topics) == 0 {
		t.Fatal("expected education topics")
	}
	for _, topic := range topics {
		if topic.Slug == "" || topic.Title == "" || len(topic.Points) == 0 {
			t.Fatalf("incomplete topic %+v", topic)
		}
		found, ok := EducationTopic(topic.Slug)
		if !ok || found.Title != topic.Title {
			t.Fatalf("lookup failed for %q", topic.Slug)
		}
	}
	if _, ok := EducationTopic("no-such-topic"); ok {
		t.Fatal("expected lookup miss for unknown slug")
	}
}
