// Package risk scores diabetes risk from a fixed patient feature vector
// using a persisted standard scaler and multinomial logistic classifier.
// The model artifact is consumed as-is; nothing here trains or updates it.
package risk

import "math"

// PatientInput is the raw 10-field patient record accepted by the API.
type PatientInput struct {
	Age              float64 `json:"age"`
	BMI              float64 `json:"bmi"`
	Weight           float64 `json:"weight"`
	Height           float64 `json:"height"`
	SystolicBP       float64 `json:"systolic_bp"`
	FamilyHistory    int     `json:"family_history"`
	PhysicalActivity int     `json:"physical_activity"`
	DietQuality      float64 `json:"diet_quality"`
	Location         int     `json:"location"`
	Smoking          int     `json:"smoking"`
}

// Prediction is the classifier output: the winning class plus the full
// per-class probability distribution.
type Prediction struct {
	RiskCategory  string             `json:"risk_category"`
	RiskLevel     int                `json:"risk_level"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// Model is a loaded artifact: feature scaling parameters and one weight row
// plus intercept per risk class.
type Model struct {
	labels     []string
	features   []string
	mean       []float64
	scale      []float64
	coefs      [][]float64
	intercepts []float64
}

// Labels returns the risk class names, index-aligned with RiskLevel.
func (m *Model) Labels() []string {
	return m.labels
}

// Features returns the feature names in the order the classifier expects its
// input vector.
func (m *Model) Features() []string {
	return m.features
}

var (
	bmiBins = []float64{0, 18.5, 25, 30, 100}
	ageBins = []float64{0, 30, 45, 60, 100}
)

// bucket assigns v to a half-open bin (lo, hi]; values outside every bin get
// the -1 sentinel the training pipeline used for out-of-range records.
func bucket(v float64, edges []float64) int {
	for i := 1; i < len(edges); i++ {
		if v > edges[i-1] && v <= edges[i] {
			return i - 1
		}
	}
	return -1
}

// featureVector derives the two bucketed features and lays out all twelve
// values in training order.
func (m *Model) featureVector(p PatientInput) []float64 {
	return []float64{
		p.Age,
		p.BMI,
		p.Weight,
		p.Height,
		p.SystolicBP,
		float64(p.FamilyHistory),
		float64(p.PhysicalActivity),
		p.DietQuality,
		float64(p.Location),
		float64(p.Smoking),
		float64(bucket(p.BMI, bmiBins)),
		float64(bucket(p.Age, ageBins)),
	}
}

// Predict standardizes the feature vector, applies the classifier and
// returns the argmax class with softmax probabilities.
func (m *Model) Predict(p PatientInput) Prediction {
	x := m.featureVector(p)
	for i := range x {
		x[i] = (x[i] - m.mean[i]) / m.scale[i]
	}

	logits := make([]float64, len(m.labels))
	for k := range m.coefs {
		logit := m.intercepts[k]
		for i, w := range m.coefs[k] {
			logit += w * x[i]
		}
		logits[k] = logit
	}

	probs := softmax(logits)
	best := 0
	for k := range probs {
		if probs[k] > probs[best] {
			best = k
		}
	}

	distribution := make(map[string]float64, len(m.labels))
	for k, label := range m.labels {
		distribution[label] = probs[k]
	}

	return Prediction{
		RiskCategory:  m.labels[best],
		RiskLevel:     best,
		Probabilities: distribution,
	}
}

func softmax(logits []float64) []float64 {
	max := logits[0]
	for _, l := range logits[1:] {
		if l > max {
			max = l
		}
	}
	sum := 0.0
	probs := make([]float64, len(logits))
	for i, l := range logits {
		probs[i] = math.Exp(l - max)
		sum += probs[i]
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}
