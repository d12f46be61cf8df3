package api

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adastra16/MediOracle-ai/internal/analysis"
)

// whenToSeekHelp is returned verbatim with every detailed analysis.
var whenToSeekHelp = []string{
	"Symptoms worsen or don't improve",
	"New or unusual symptoms develop",
	"Difficulty breathing or chest pain",
	"Loss of consciousness",
	"Severe pain",
	"High fever (above 103°F / 39.4°C)",
}

// analyzeSymptoms handles POST /api/analyze-symptoms. Emergency detection
// runs before scoring and returns the canned emergency record when it fires.
func analyzeSymptoms(c *gin.Context) {
	var req SymptomAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if analysis.DetectEmergency(req.Symptoms) {
		log.Printf("emergency symptoms detected: %v", req.Symptoms)
		c.JSON(http.StatusOK, analysis.Emergency())
		return
	}

	c.JSON(http.StatusOK, analysis.Analyze(req.Symptoms))
}

// detailedAnalysis handles POST /api/analyze. Symptoms arrive as one
// comma-separated string; medical history and medications are echoed back as
// risk factors without influencing the scoring.
func detailedAnalysis(c *gin.Context) {
	var req DetailedAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	symptoms := splitSymptoms(req.Symptoms)

	if analysis.DetectEmergency(symptoms) {
		log.Printf("emergency symptoms detected in detailed analysis")
		c.JSON(http.StatusOK, analysis.Emergency())
		return
	}

	result := analysis.Analyze(symptoms)
	conditions := analysis.SuggestConditions(symptoms)

	riskFactors := append([]string{}, req.MedicalHistory...)
	if len(req.CurrentMedications) > 0 {
		riskFactors = append(riskFactors, "Currently taking: "+strings.Join(req.CurrentMedications, ", "))
	}

	c.JSON(http.StatusOK, DetailedAnalysisResponse{
		SymptomAssessment:  fmt.Sprintf("Assessment based on reported symptoms: %s. Professional medical evaluation is essential for accurate diagnosis.", strings.Join(symptoms, ", ")),
		PossibleConditions: conditions,
		SeverityLevel:      result.RiskLevel,
		RecommendedActions: result.Recommendations,
		RiskFactors:        riskFactors,
		WhenToSeekHelp:     whenToSeekHelp,
		Disclaimer:         analysis.Disclaimer,
	})
}

func splitSymptoms(text string) []string {
	out := []string{}
	for _, part := range strings.Split(text, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
