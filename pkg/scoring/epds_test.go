package scoring

import (
	"testing"
)

func TestScoreEPDS(t *testing.T) {
	tests := []struct {
		name      string
		items     []int
		wantTotal int
		wantLevel RiskLevel
	}{
		{
			name:      "all zeros",
			items:     []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
			wantTotal: 0,
			wantLevel: RiskLow,
		},
		{
			name:      "boundary total 9 is low",
			items:     []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 0},
			wantTotal: 9,
			wantLevel: RiskLow,
		},
		{
			name:      "boundary total 10 is moderate",
			items:     []int{1, 1, 1, 1, 1, 1, 1, 1, 2, 0},
			wantTotal: 10,
			wantLevel: RiskModerate,
		},
		{
			name:      "boundary total 12 is moderate",
			items:     []int{2, 2, 2, 2, 2, 1, 1, 0, 0, 0},
			wantTotal: 12,
			wantLevel: RiskModerate,
		},
		{
			name:      "boundary total 13 is high",
			items:     []int{2, 2, 2, 2, 2, 1, 1, 1, 0, 0},
			wantTotal: 13,
			wantLevel: RiskHigh,
		},
		{
			name:      "maximum score",
			items:     []int{3, 3, 3, 3, 3, 3, 3, 3, 3, 3},
			wantTotal: 30,
			wantLevel: RiskHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreEPDS(tt.items)
			if err != nil {
				t.Fatalf("ScoreEPDS() error = %v", err)
			}
			if got.Total != tt.wantTotal {
				t.Errorf("Total = %d, want %d", got.Total, tt.wantTotal)
			}
			if got.RiskLevel != tt.wantLevel {
				t.Errorf("RiskLevel = %q, want %q", got.RiskLevel, tt.wantLevel)
			}
		})
	}
}

func TestScoreEPDSRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		items []int
	}{
		{name: "too few items", items: []int{1, 2, 3}},
		{name: "too many items", items: []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{name: "empty", items: nil},
		{name: "item above range", items: []int{0, 0, 0, 0, 4, 0, 0, 0, 0, 0}},
		{name: "negative item", items: []int{0, 0, 0, 0, 0, 0, 0, -1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScoreEPDS(tt.items); err == nil {
				t.Errorf("ScoreEPDS(%v) expected error, got nil", tt.items)
			}
		})
	}
}

func TestSelfHarmFlagged(t *testing.T) {
	// The flag depends only on the tenth item, never on the total.
	items := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	res, err := ScoreEPDS(items)
	if err != nil {
		t.Fatalf("ScoreEPDS() error = %v", err)
	}
	if res.Total != 1 || res.RiskLevel != RiskLow {
		t.Errorf("got total=%d level=%q, want total=1 level=low", res.Total, res.RiskLevel)
	}
	if !SelfHarmFlagged(items) {
		t.Error("SelfHarmFlagged() = false, want true despite low total")
	}

	if SelfHarmFlagged([]int{3, 3, 3, 3, 3, 3, 3, 3, 3, 0}) {
		t.Error("SelfHarmFlagged() = true for zero tenth item, want false")
	}
}

func TestClassifyMoodScore(t *testing.T) {
	tests := []struct {
		score int
		want  MoodBand
	}{
		{1, MoodLow},
		{2, MoodLow},
		{3, MoodNeutral},
		{4, MoodGood},
		{5, MoodGood},
	}
	for _, tt := range tests {
		if got := ClassifyMoodScore(tt.score); got != tt.want {
			t.Errorf("ClassifyMoodScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
