package scoring

import (
	"math"
	"time"
)

// MoodBand coarsely classifies a 1-5 mood score. Bands only select a
// canned fallback message; they are never persisted.
type MoodBand string

const (
	MoodLow     MoodBand = "low"     // 1-2
	MoodNeutral MoodBand = "neutral" // 3
	MoodGood    MoodBand = "good"    // 4-5
)

// ClassifyMoodScore maps a mood score onto its band.
func ClassifyMoodScore(score int) MoodBand {
	switch {
	case score <= 2:
		return MoodLow
	case score == 3:
		return MoodNeutral
	default:
		return MoodGood
	}
}

// MoodSample is the slice of a mood entry the aggregator needs.
type MoodSample struct {
	Score     int
	Emotions  []string
	CreatedAt time.Time
}

// EmotionCount pairs an emotion tag with its frequency in the window.
type EmotionCount struct {
	Emotion string `json:"emotion"`
	Count   int    `json:"count"`
}

// WeeklyAggregate summarizes a 7-day window of mood entries.
type WeeklyAggregate struct {
	AverageScore      float64 // rounded to 1 decimal
	TotalEntries      int
	TopEmotions       []EmotionCount // descending by count, capped at 5
	ConcerningPattern bool
}

// AggregateWeek computes display statistics over the supplied entries.
// Callers are expected to have restricted the slice to the window they
// care about; the function itself does no time filtering.
//
// ConcerningPattern is raised when there are at least three entries and
// at least half of them scored 2 or lower. Emotion ties keep first-seen
// order.
func AggregateWeek(entries []MoodSample) WeeklyAggregate {
	agg := WeeklyAggregate{TotalEntries: len(entries)}
	if len(entries) == 0 {
		agg.TopEmotions = []EmotionCount{}
		return agg
	}

	sum := 0
	lowCount := 0
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, e := range entries {
		sum += e.Score
		if e.Score <= 2 {
			lowCount++
		}
		for _, emotion := range e.Emotions {
			if _, seen := counts[emotion]; !seen {
				order = append(order, emotion)
			}
			counts[emotion]++
		}
	}

	agg.AverageScore = math.Round(float64(sum)/float64(len(entries))*10) / 10

	// Stable descending sort over first-seen order, so ties keep
	// insertion order.
	ranked := make([]EmotionCount, 0, len(order))
	for _, emotion := range order {
		ranked = append(ranked, EmotionCount{Emotion: emotion, Count: counts[emotion]})
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Count > ranked[j-1].Count; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	agg.TopEmotions = ranked

	agg.ConcerningPattern = len(entries) >= 3 &&
		float64(lowCount)/float64(len(entries)) >= 0.5

	return agg
}
