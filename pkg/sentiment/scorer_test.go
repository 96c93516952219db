package sentiment

import (
	"testing"
)

func TestScore(t *testing.T) {
	scorer := NewScorer(DefaultLexicon())

	tests := []struct {
		name           string
		text           string
		wantScore      float64
		wantLabel      string
		wantConfidence float64
	}{
		{
			name:           "no matches yields neutral prior",
			text:           "the weather is cloudy today",
			wantScore:      0,
			wantLabel:      LabelNeutral,
			wantConfidence: 0.5,
		},
		{
			name:           "all positive",
			text:           "I had a wonderful day, felt so grateful",
			wantScore:      1.0,
			wantLabel:      LabelPositive,
			wantConfidence: 1.0,
		},
		{
			name:           "all negative",
			text:           "feeling sad and anxious",
			wantScore:      -1.0,
			wantLabel:      LabelNegative,
			wantConfidence: 1.0,
		},
		{
			name:           "balanced evidence is neutral with zero confidence",
			text:           "happy but sad",
			wantScore:      0,
			wantLabel:      LabelNeutral,
			wantConfidence: 0,
		},
		{
			name:           "stem matches inside larger words",
			text:           "unhappy saddened",
			wantScore:      0,
			wantLabel:      LabelNeutral,
			wantConfidence: 0,
		},
		{
			name:           "token with two stems from one list counts once",
			text:           "lovejoy",
			wantScore:      1.0,
			wantLabel:      LabelPositive,
			wantConfidence: 1.0,
		},
		{
			name:           "empty input",
			text:           "",
			wantScore:      0,
			wantLabel:      LabelNeutral,
			wantConfidence: 0.5,
		},
		{
			name:           "case insensitive",
			text:           "WONDERFUL",
			wantScore:      1.0,
			wantLabel:      LabelPositive,
			wantConfidence: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.text)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("Label = %q, want %q", got.Label, tt.wantLabel)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestScoreLabelDeadZone(t *testing.T) {
	scorer := NewScorer(DefaultLexicon())

	// 6 positive vs 5 negative stems: score 1/11 sits inside the dead zone,
	// so the label stays neutral even though the score is nonzero.
	got := scorer.Score("happy good great wonderful amazing love sad bad terrible awful hate")
	if got.Score <= 0 || got.Score > 0.1 {
		t.Fatalf("expected score in (0, 0.1], got %v", got.Score)
	}
	if got.Label != LabelNeutral {
		t.Errorf("Label = %q, want %q", got.Label, LabelNeutral)
	}
	if got.Confidence != got.Score {
		t.Errorf("Confidence = %v, want |score| = %v", got.Confidence, got.Score)
	}
}

func TestScoreDeterministic(t *testing.T) {
	scorer := NewScorer(DefaultLexicon())

	text := "grateful but worried about tomorrow"
	first := scorer.Score(text)
	for i := 0; i < 10; i++ {
		if got := scorer.Score(text); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}
