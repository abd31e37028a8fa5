package scoring

import "fmt"

// RiskLevel buckets an EPDS total score for downstream interpretation.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"

	// EPDSItemCount is the fixed number of questionnaire items.
	EPDSItemCount = 10

	// selfHarmItemIndex is the tenth item ("the thought of harming
	// myself has occurred to me"), 0-indexed.
	selfHarmItemIndex = 9
)

// EPDSResult is the outcome of scoring a completed screening.
type EPDSResult struct {
	Total     int
	RiskLevel RiskLevel
}

// ValidateEPDSItems checks the shape of a submitted questionnaire:
// exactly 10 items, each in [0,3].
func ValidateEPDSItems(items []int) error {
	if len(items) != EPDSItemCount {
		return fmt.Errorf("expected %d item scores, got %d", EPDSItemCount, len(items))
	}
	for i, s := range items {
		if s < 0 || s > 3 {
			return fmt.Errorf("item %d score %d out of range [0,3]", i+1, s)
		}
	}
	return nil
}

// ScoreEPDS sums the item scores and derives the risk level:
// total >= 13 is high, 10..12 is moderate, below 10 is low.
func ScoreEPDS(items []int) (EPDSResult, error) {
	if err := ValidateEPDSItems(items); err != nil {
		return EPDSResult{}, err
	}

	total := 0
	for _, s := range items {
		total += s
	}

	level := RiskLow
	switch {
	case total >= 13:
		level = RiskHigh
	case total >= 10:
		level = RiskModerate
	}

	return EPDSResult{Total: total, RiskLevel: level}, nil
}

// SelfHarmFlagged reports whether the self-harm item was answered with
// anything above zero. The flag is independent of the total score and
// must take precedence over it.
func SelfHarmFlagged(items []int) bool {
	if len(items) <= selfHarmItemIndex {
		return false
	}
	return items[selfHarmItemIndex] > 0
}
