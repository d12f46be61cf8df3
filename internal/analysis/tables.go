package analysis

// RiskLevel classifies a severity score into one of four ordinal tiers.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// Disclaimer is attached to every analysis result.
const Disclaimer = `
⚠️ IMPORTANT MEDICAL DISCLAIMER

This information is for educational purposes only and does NOT constitute medical advice.
It is not a substitute for professional medical diagnosis, treatment, or consultation.

🚨 SEEK IMMEDIATE EMERGENCY CARE FOR:
- Chest pain or pressure
- Difficulty breathing
- Loss of consciousness
- Severe bleeding or trauma
- Poisoning or overdose
- Signs of stroke
- Severe allergic reactions

Always consult a qualified healthcare provider for proper evaluation and treatment.
`

const (
	emergencyMessage = "🚨 EMERGENCY DETECTED 🚨\n\nYour symptoms may indicate a medical emergency.\n\n📞 CALL 911 IMMEDIATELY or go to the nearest emergency room.\n\nDO NOT DELAY. Seek immediate professional medical care."

	emergencyRecommendation  = "🚨 SEEK EMERGENCY CARE IMMEDIATELY (Call 911 or go to ER)"
	promptCareRecommendation = "⚠️ Seek medical attention promptly"
)

// baselineSeverity is assigned to symptoms not found in the severity table.
const baselineSeverity = 20

type severityEntry struct {
	phrase   string
	severity int
}

// severityTable maps known symptom phrases to a 0-100 severity. Order is
// load-bearing: scoring takes the first phrase found as a substring of the
// input, so broader phrases must not shadow more specific ones declared
// earlier.
var severityTable = []severityEntry{
	// Critical (90-100)
	{"chest pain", 95},
	{"difficulty breathing", 90},
	{"loss of consciousness", 100},
	{"severe bleeding", 95},

	// High (70-89)
	{"severe headache", 75},
	{"high fever", 80},
	{"severe abdominal pain", 85},
	{"paralysis", 90},

	// Medium (40-69)
	{"moderate fever", 55},
	{"cough", 45},
	{"mild headache", 35},
	{"diarrhea", 50},
	{"fatigue", 40},
	{"nausea", 45},

	// Low (0-39)
	{"runny nose", 15},
	{"itching", 10},
	{"mild rash", 30},
}

// emergencyPhrases flag symptoms that require immediate attention.
var emergencyPhrases = []string{
	"chest pain",
	"severe breathing difficulty",
	"loss of consciousness",
	"severe bleeding",
	"poisoning",
	"anaphylaxis",
	"stroke symptoms",
	"cardiac arrest",
	"severe trauma",
	"overdose",
	"uncontrolled seizure",
}

// explanationRules pair symptom keywords with educational text. Checked in
// order; the first matching keyword wins.
var explanationRules = []struct {
	keyword string
	text    string
}{
	{"fever", "Elevated body temperature may indicate infection, inflammation, or other medical condition"},
	{"cough", "Respiratory symptom that may indicate viral/bacterial infection or other respiratory condition"},
	{"headache", "Head pain that can have many causes including tension, migraines, or underlying conditions"},
	{"fatigue", "General weakness or exhaustion that may indicate infection, sleep issues, or other conditions"},
	{"pain", "Localized or general pain requiring proper medical evaluation"},
}

const defaultExplanation = "Symptom requiring professional medical evaluation"
