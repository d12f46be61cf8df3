package analysis

import (
	"fmt"
	"testing"
)

func TestScoreSeverity_EmptyInput(t *testing.T) {
	if got := ScoreSeverity(nil); got != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got)
	}
	if got := ScoreSeverity([]string{}); got != 0 {
		t.Fatalf("expected 0 for empty slice, got %d", got)
	}
}

func TestScoreSeverity_KnownSymptoms(t *testing.T) {
	cases := []struct {
		symptoms []string
		want     int
	}{
		{[]string{"chest pain"}, 95},
		{[]string{"mild headache"}, 35},
		{[]string{"loss of consciousness"}, 100},
		{[]string{"runny nose"}, 15},
		// Unknown symptom scores the baseline.
		{[]string{"sore elbow"}, 20},
		// 60% average + 40% max: avg 62.5, max 80 -> int(37.5+32) = 69.
		{[]string{"high fever", "cough"}, 69},
	}

	for _, tc := range cases {
		if got := ScoreSeverity(tc.symptoms); got != tc.want {
			t.Errorf("ScoreSeverity(%v) = %d, want %d", tc.symptoms, got, tc.want)
		}
	}
}

func TestScoreSeverity_BleedingFloor(t *testing.T) {
	for _, symptoms := range [][]string{
		{"vomiting"},
		{"blood in stool"},
		{"bleeding gums"},
		{"mild headache", "vomiting"},
	} {
		if got := ScoreSeverity(symptoms); got < 95 {
			t.Errorf("ScoreSeverity(%v) = %d, want >= 95", symptoms, got)
		}
	}
}

func TestScoreSeverity_TwoHighSymptomsFloor(t *testing.T) {
	// 80 and 90: int(85*0.6 + 90*0.4) = 87, floored to 90.
	if got := ScoreSeverity([]string{"high fever", "paralysis"}); got != 90 {
		t.Fatalf("expected floor of 90 for two high-severity symptoms, got %d", got)
	}
}

func TestScoreSeverity_PersistenceBoost(t *testing.T) {
	base := ScoreSeverity([]string{"cough"})
	boosted := ScoreSeverity([]string{"persistent cough"})
	if boosted != base+10 {
		t.Fatalf("expected +10 persistence boost, got %d vs base %d", boosted, base)
	}
}

func TestScoreSeverity_ClampedAt100(t *testing.T) {
	// Bleeding floor 95 plus persistence boost lands above 100 before the clamp.
	if got := ScoreSeverity([]string{"continuous bleeding"}); got != 100 {
		t.Fatalf("expected clamp at 100, got %d", got)
	}
}

func TestScoreSeverity_AlwaysInRange(t *testing.T) {
	inputs := [][]string{
		nil,
		{""},
		{"x"},
		{"chest pain", "loss of consciousness", "severe bleeding"},
		{"persistent ongoing continuous vomiting blood"},
		{"a", "b", "c", "d", "e", "f", "g"},
		{"MILD HEADACHE", "High Fever"},
	}
	for _, symptoms := range inputs {
		got := ScoreSeverity(symptoms)
		if got < 0 || got > 100 {
			t.Errorf("ScoreSeverity(%v) = %d, out of [0,100]", symptoms, got)
		}
	}
}

func TestScoreSeverity_Idempotent(t *testing.T) {
	symptoms := []string{"persistent cough", "high fever"}
	first := ScoreSeverity(symptoms)
	second := ScoreSeverity(symptoms)
	if first != second {
		t.Fatalf("expected identical scores, got %d then %d", first, second)
	}
}

func TestClassifyRisk_FullPartition(t *testing.T) {
	for score := 0; score <= 100; score++ {
		var want RiskLevel
		switch {
		case score >= 90:
			want = RiskCritical
		case score >= 70:
			want = RiskHigh
		case score >= 40:
			want = RiskMedium
		default:
			want = RiskLow
		}
		if got := ClassifyRisk(score); got != want {
			t.Errorf("ClassifyRisk(%d) = %s, want %s", score, got, want)
		}
	}
}

func TestClassifyRisk_OutOfRangeDefaultsLow(t *testing.T) {
	for _, score := range []int{-1, 101, 1000} {
		if got := ClassifyRisk(score); got != RiskLow {
			t.Errorf("ClassifyRisk(%d) = %s, want LOW", score, got)
		}
	}
}

func TestDetectEmergency(t *testing.T) {
	cases := []struct {
		symptoms []string
		want     bool
	}{
		{[]string{"chest pain"}, true},
		{[]string{"crushing CHEST PAIN for an hour"}, true},
		{[]string{"nose bleed"}, true},
		{[]string{"nosebleed"}, true},
		{[]string{"epistaxis"}, true},
		{[]string{"vomiting blood"}, true},
		{[]string{"throwing up blood"}, true},
		{[]string{"severe bleeding from cut"}, true},
		{[]string{"ongoing bleeding"}, true},
		{[]string{"continuous bleeding"}, true},
		{[]string{"possible overdose"}, true},
		{[]string{"mild headache"}, false},
		{[]string{"runny nose"}, false},
		{[]string{"cough", "fatigue"}, false},
		{nil, false},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%v", tc.symptoms), func(t *testing.T) {
			if got := DetectEmergency(tc.symptoms); got != tc.want {
				t.Fatalf("DetectEmergency(%v) = %v, want %v", tc.symptoms, got, tc.want)
			}
			// Pure function: repeated calls must agree.
			if again := DetectEmergency(tc.symptoms); again != tc.want {
				t.Fatalf("DetectEmergency(%v) changed between calls", tc.symptoms)
			}
		})
	}
}
