package advice

// Topic is one static education entry.
type Topic struct {
	Slug    string   `json:"slug"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Points  []string `json:"points"`
}

var educationTopics = []Topic{
	{
		Slug:    "blood-sugar-basics",
		Title:   "Blood Sugar Basics",
		Summary: "What glucose readings mean and when to act on them.",
		Points: []string{
			"A fasting reading of 70-130 mg/dL is typical for people managing diabetes.",
			"Readings above 180 mg/dL two hours after a meal are considered high.",
			"Readings below 70 mg/dL need fast-acting carbohydrates right away.",
		},
	},
	{
		Slug:    "nutrition",
		Title:   "Nutrition and Carb Counting",
		Summary: "How food choices move your glucose levels.",
		Points: []string{
			"Carbohydrates raise blood sugar more than protein or fat.",
			"Counting carbs per meal makes insulin dosing more predictable.",
			"Fiber slows glucose absorption; favor whole grains and vegetables.",
		},
	},
	{
		Slug:    "physical-activity",
		Title:   "Physical Activity",
		Summary: "Using exercise to improve insulin sensitivity.",
		Points: []string{
			"Moderate activity lowers blood sugar for up to 24 hours afterwards.",
			"Check your glucose before and after workouts to learn your response.",
			"Carry fast-acting carbs during longer sessions.",
		},
	},
	{
		Slug:    "medications",
		Title:   "Diabetes Medications",
		Summary: "Common medication classes and adherence basics.",
		Points: []string{
			"Metformin reduces glucose production in the liver.",
			"Insulin timing matters; take it as prescribed relative to meals.",
			"Never change doses without talking to your care team.",
		},
	},
	{
		Slug:    "monitoring",
		Title:   "Monitoring and Devices",
		Summary: "Building a reliable testing routine.",
		Points: []string{
			"Test at consistent times to make readings comparable day to day.",
			"Log readings with context: meals, activity, stress and sleep.",
			"Continuous glucose monitors can reveal overnight patterns.",
		},
	},
}

// Education returns every education topic in display order.
func Education() []Topic {
	return educationTopics
}

// EducationTopic looks up one topic by slug.
func EducationTopic(slug string) (Topic, bool) {
	for _, t := range educationTopics {
		if t.Slug == slug {
			return t, true
		}
	}
	return Topic{}, false
}
