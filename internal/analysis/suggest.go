package analysis

import "strings"

// Suggestion is an educational (non-diagnostic) condition suggestion.
type Suggestion struct {
	Condition  string `json:"condition"`
	Likelihood string `json:"likelihood"`
	Info       string `json:"info"`
}

// maxSuggestions caps how many suggestions a single analysis returns.
const maxSuggestions = 4

// SuggestConditions matches the combined symptom text against a fixed set of
// rules and returns educational condition suggestions, de-duplicated by
// condition text and capped at maxSuggestions in rule order. A generic
// suggestion is returned when no rule fires.
func SuggestConditions(symptoms []string) []Suggestion {
	joined := strings.ToLower(strings.Join(symptoms, " "))
	has := func(sub string) bool { return strings.Contains(joined, sub) }

	var out []Suggestion
	seen := make(map[string]bool)
	add := func(s Suggestion) {
		if !seen[s.Condition] {
			seen[s.Condition] = true
			out = append(out, s)
		}
	}

	if has("vomit") && has("blood") {
		add(Suggestion{
			Condition:  "Possible gastrointestinal bleeding - requires urgent evaluation",
			Likelihood: "unknown",
			Info:       "Vomiting blood can indicate bleeding in the stomach or esophagus",
		})
	}

	if has("fever") {
		if has("abdominal") || has("stomach") {
			add(Suggestion{
				Condition:  "Possible dengue or other systemic infection",
				Likelihood: "moderate",
				Info:       "Fever with abdominal pain is seen in dengue and other systemic infections",
			})
			add(Suggestion{
				Condition:  "Possible gastroenteritis or stomach infection",
				Likelihood: "moderate",
				Info:       "Fever with stomach discomfort often accompanies gastrointestinal infection",
			})
		} else {
			add(Suggestion{
				Condition:  "Possible viral infection",
				Likelihood: "moderate",
				Info:       "Fever without localizing symptoms is often caused by common viral illness",
			})
		}
	}

	if (has("vomit") || has("nausea")) && (has("stomach") || has("abdominal")) {
		add(Suggestion{
			Condition:  "Possible gastroenteritis or food poisoning",
			Likelihood: "moderate",
			Info:       "Nausea or vomiting with abdominal discomfort commonly follows foodborne illness",
		})
	}

	if has("chest") {
		add(Suggestion{
			Condition:  "Multiple possible causes - cardiac, pulmonary, or musculoskeletal",
			Likelihood: "unknown",
			Info:       "Chest symptoms can indicate heart problems and require emergency evaluation",
		})
	}

	if has("headache") {
		add(Suggestion{
			Condition:  "Possible tension headache or migraine",
			Likelihood: "moderate",
			Info:       "Requires professional evaluation to determine the underlying cause",
		})
	}

	if len(out) == 0 {
		add(Suggestion{
			Condition:  "Requires professional medical evaluation",
			Likelihood: "unknown",
			Info:       "Consult a healthcare provider for proper diagnosis",
		})
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
