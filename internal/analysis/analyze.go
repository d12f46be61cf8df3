package analysis

import "strings"

// Result is the assembled outcome of a non-emergency symptom analysis.
type Result struct {
	SeverityScore    int               `json:"severity_score"`
	RiskLevel        RiskLevel         `json:"risk_level"`
	IsEmergency      bool              `json:"is_emergency"`
	SymptomsAnalysis map[string]string `json:"symptoms_analysis"`
	Recommendations  []string          `json:"recommendations"`
	Disclaimer       string            `json:"disclaimer"`
}

// EmergencyResult is the fixed maximal-severity record returned when
// emergency symptoms short-circuit the scoring path.
type EmergencyResult struct {
	IsEmergency      bool              `json:"is_emergency"`
	SeverityScore    int               `json:"severity_score"`
	RiskLevel        RiskLevel         `json:"risk_level"`
	SymptomsAnalysis map[string]string `json:"symptoms_analysis"`
	Recommendations  []string          `json:"recommendations"`
	Message          string            `json:"message"`
	Disclaimer       string            `json:"disclaimer"`
}

// Analyze scores the symptoms, classifies the risk, checks for emergencies,
// and assembles per-symptom explanations and recommendations. Emergency
// short-circuiting is the caller's responsibility: callers should consult
// DetectEmergency first and return Emergency() instead when it fires.
func Analyze(symptoms []string) Result {
	score := ScoreSeverity(symptoms)
	level := ClassifyRisk(score)
	emergency := DetectEmergency(symptoms)

	explanations := make(map[string]string, len(symptoms))
	for _, symptom := range symptoms {
		explanations[symptom] = explainSymptom(symptom)
	}

	recommendations := []string{
		"Consult a qualified healthcare provider for proper evaluation",
		"Keep track of symptom progression and duration",
		"Follow basic health precautions (hygiene, rest, hydration)",
	}
	if level == RiskHigh || level == RiskCritical {
		recommendations = append([]string{promptCareRecommendation}, recommendations...)
	}
	if emergency {
		recommendations = append([]string{emergencyRecommendation}, recommendations...)
	}

	return Result{
		SeverityScore:    score,
		RiskLevel:        level,
		IsEmergency:      emergency,
		SymptomsAnalysis: explanations,
		Recommendations:  recommendations,
		Disclaimer:       Disclaimer,
	}
}

// Emergency returns the canned maximal-severity record. No scoring happens
// on this path.
func Emergency() EmergencyResult {
	return EmergencyResult{
		IsEmergency:      true,
		SeverityScore:    100,
		RiskLevel:        RiskCritical,
		SymptomsAnalysis: map[string]string{},
		Recommendations: []string{
			emergencyRecommendation,
			"Do not delay - immediate professional care is critical",
		},
		Message:    emergencyMessage,
		Disclaimer: Disclaimer,
	}
}

func explainSymptom(symptom string) string {
	lower := strings.ToLower(symptom)
	for _, rule := range explanationRules {
		if strings.Contains(lower, rule.keyword) {
			return rule.text
		}
	}
	return defaultExplanation
}
