// Package advice serves the static guidance and education content behind the
// meal, exercise, medication and education endpoints. All content is fixed at
// compile time; there is no per-user state.
package advice

// Thresholds in mg/dL separating low, in-range and high readings.
const (
	lowReadingBelow  = 70
	highReadingAbove = 180
)

var mealGuidance = []string{
	"Focus on balanced meals with vegetables, lean proteins, and controlled carbohydrates.",
	"Consider working with a registered dietitian for personalized meal planning.",
	"Track your food intake to understand how different foods affect your blood sugar.",
}

var highReadingMealGuidance = []string{
	"Your recent reading is high; favor low-carbohydrate options for your next meal.",
	"Stay hydrated and avoid sugary drinks until your levels settle.",
}

var lowReadingMealGuidance = []string{
	"Your recent reading is low; have 15g of fast-acting carbohydrates now.",
	"Recheck your blood sugar in 15 minutes before eating a full meal.",
}

var exerciseGuidance = []string{
	"Regular physical activity helps improve insulin sensitivity and blood sugar control.",
	"Aim for 150 minutes of moderate exercise per week, but check blood sugar before and after.",
	"Start with activities you enjoy - walking, swimming, or cycling are great options.",
}

var medicationGuidance = []string{
	"Taking medications as prescribed is crucial for diabetes management.",
	"Set reminders on your phone or use a pill organizer to stay consistent.",
	"If you're experiencing side effects, discuss alternatives with your doctor.",
}

// Meal returns dietary guidance, tailored when a recent glucose reading is
// supplied.
func Meal(recentGlucose int, hasReading bool) []string {
	if !hasReading {
		return mealGuidance
	}
	switch {
	case recentGlucose > highReadingAbove:
		return joined(highReadingMealGuidance, mealGuidance)
	case recentGlucose < lowReadingBelow:
		return joined(lowReadingMealGuidance, mealGuidance)
	default:
		return mealGuidance
	}
}

func joined(lists ...[]string) []string {
	out := []string{}
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Exercise returns the fixed activity guidance list.
func Exercise() []string {
	return exerciseGuidance
}

// Medication returns the fixed adherence guidance list.
func Medication() []string {
	return medicationGuidance
}
