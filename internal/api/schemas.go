package api

import "github.com/adastra16/MediOracle-ai/internal/analysis"

// SymptomAnalysisRequest is the payload for POST /api/analyze-symptoms.
type SymptomAnalysisRequest struct {
	Symptoms []string `json:"symptoms" binding:"required,min=1,dive,required"`
	Age      *int     `json:"age"`
	Gender   string   `json:"gender"`
	Duration string   `json:"duration"`
}

// DetailedAnalysisRequest is the payload for POST /api/analyze. Symptoms
// arrive as a single comma-separated description.
type DetailedAnalysisRequest struct {
	Symptoms           string   `json:"symptoms" binding:"required"`
	MedicalHistory     []string `json:"medical_history"`
	CurrentMedications []string `json:"current_medications"`
}

// DetailedAnalysisResponse is the non-emergency response of POST /api/analyze.
type DetailedAnalysisResponse struct {
	SymptomAssessment  string                `json:"symptom_assessment"`
	PossibleConditions []analysis.Suggestion `json:"possible_conditions"`
	SeverityLevel      analysis.RiskLevel    `json:"severity_level"`
	RecommendedActions []string              `json:"recommended_actions"`
	RiskFactors        []string              `json:"risk_factors"`
	WhenToSeekHelp     []string              `json:"when_to_seek_help"`
	Disclaimer         string                `json:"disclaimer"`
}
