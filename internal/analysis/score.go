// Package analysis implements the rule-based symptom analysis engine:
// severity scoring, risk classification, emergency detection, and
// educational condition suggestions. All functions are pure and operate on
// static keyword tables, so they are safe for concurrent use.
package analysis

import "strings"

// ScoreSeverity computes a 0-100 severity score for the given symptoms.
// Each symptom is matched against the severity table (first substring match
// wins, unknown symptoms score a baseline of 20), then the per-symptom
// scores are combined as 60% average + 40% maximum to emphasize the worst
// symptom. Escalation rules only ever raise the score.
func ScoreSeverity(symptoms []string) int {
	if len(symptoms) == 0 {
		return 0
	}

	scores := make([]int, 0, len(symptoms))
	sum := 0
	maximum := 0
	highCount := 0
	for _, symptom := range symptoms {
		lower := strings.ToLower(symptom)

		score := baselineSeverity
		for _, entry := range severityTable {
			if strings.Contains(lower, entry.phrase) {
				score = entry.severity
				break
			}
		}

		scores = append(scores, score)
		sum += score
		if score > maximum {
			maximum = score
		}
		if score >= 80 {
			highCount++
		}
	}

	average := float64(sum) / float64(len(scores))
	final := int(average*0.6 + float64(maximum)*0.4)

	// Any bleeding or vomiting presentation is floored near-critical.
	if anyContains(symptoms, "bleed", "blood", "vomit") && final < 95 {
		final = 95
	}
	// Two or more high-severity symptoms together are worse than either alone.
	if highCount >= 2 && final < 90 {
		final = 90
	}
	// Persistence of symptoms raises concern.
	if anyContains(symptoms, "continuous", "ongoing", "persistent") {
		final += 10
	}

	return clampScore(final)
}

// ClassifyRisk maps a severity score to its risk tier. The four ranges are
// contiguous and cover all of [0,100]; anything else defaults to LOW.
func ClassifyRisk(score int) RiskLevel {
	switch {
	case score >= 90 && score <= 100:
		return RiskCritical
	case score >= 70 && score <= 89:
		return RiskHigh
	case score >= 40 && score <= 69:
		return RiskMedium
	case score >= 0 && score <= 39:
		return RiskLow
	default:
		return RiskLow
	}
}

// DetectEmergency reports whether any symptom indicates an emergency, either
// by containing a known emergency phrase or by satisfying one of the
// compound bleeding rules. This is a best-effort keyword heuristic, not a
// clinical system.
func DetectEmergency(symptoms []string) bool {
	for _, symptom := range symptoms {
		lower := strings.ToLower(symptom)

		for _, phrase := range emergencyPhrases {
			if strings.Contains(lower, phrase) {
				return true
			}
		}
		if bleedingEmergency(lower) {
			return true
		}
	}
	return false
}

// bleedingEmergency catches bleeding presentations that the emergency phrase
// set misses, e.g. "vomiting blood" or "nose bleed". Input must already be
// lower-cased.
func bleedingEmergency(s string) bool {
	switch {
	case strings.Contains(s, "vomit") && strings.Contains(s, "blood"):
		return true
	case strings.Contains(s, "throw") && strings.Contains(s, "blood"):
		return true
	case strings.Contains(s, "severe") && strings.Contains(s, "bleed"):
		return true
	case strings.Contains(s, "nose") && strings.Contains(s, "bleed"):
		return true
	case strings.Contains(s, "nosebleed") || strings.Contains(s, "epistaxis"):
		return true
	case (strings.Contains(s, "continuous") || strings.Contains(s, "ongoing")) && strings.Contains(s, "bleed"):
		return true
	default:
		return false
	}
}

func anyContains(symptoms []string, substrings ...string) bool {
	for _, symptom := range symptoms {
		lower := strings.ToLower(symptom)
		for _, sub := range substrings {
			if strings.Contains(lower, sub) {
				return true
			}
		}
	}
	return false
}

func clampScore(score int) int {
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
