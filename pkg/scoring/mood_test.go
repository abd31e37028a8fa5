package scoring

import (
	"testing"
	"time"
)

func sample(score int, emotions ...string) MoodSample {
	return MoodSample{Score: score, Emotions: emotions, CreatedAt: time.Now()}
}

func TestAggregateWeek(t *testing.T) {
	t.Run("average and concerning pattern", func(t *testing.T) {
		agg := AggregateWeek([]MoodSample{
			sample(1), sample(2), sample(1), sample(4), sample(5),
		})
		if agg.AverageScore != 2.6 {
			t.Errorf("AverageScore = %v, want 2.6", agg.AverageScore)
		}
		if !agg.ConcerningPattern {
			t.Error("ConcerningPattern = false, want true (3 of 5 entries <= 2)")
		}
		if agg.TotalEntries != 5 {
			t.Errorf("TotalEntries = %d, want 5", agg.TotalEntries)
		}
	})

	t.Run("no low scores means no pattern", func(t *testing.T) {
		agg := AggregateWeek([]MoodSample{sample(5), sample(5), sample(4)})
		if agg.ConcerningPattern {
			t.Error("ConcerningPattern = true, want false")
		}
		if agg.AverageScore != 4.7 {
			t.Errorf("AverageScore = %v, want 4.7", agg.AverageScore)
		}
	})

	t.Run("fewer than three entries never concerning", func(t *testing.T) {
		agg := AggregateWeek([]MoodSample{sample(1), sample(1)})
		if agg.ConcerningPattern {
			t.Error("ConcerningPattern = true, want false for 2 entries")
		}
	})

	t.Run("empty window", func(t *testing.T) {
		agg := AggregateWeek(nil)
		if agg.AverageScore != 0 || agg.TotalEntries != 0 || agg.ConcerningPattern {
			t.Errorf("unexpected aggregate for empty input: %+v", agg)
		}
		if agg.TopEmotions == nil || len(agg.TopEmotions) != 0 {
			t.Errorf("TopEmotions = %v, want empty slice", agg.TopEmotions)
		}
	})

	t.Run("emotion ranking with stable ties", func(t *testing.T) {
		agg := AggregateWeek([]MoodSample{
			sample(3, "tired", "anxious"),
			sample(3, "anxious", "hopeful"),
			sample(3, "tired", "calm"),
		})
		want := []EmotionCount{
			{Emotion: "tired", Count: 2},
			{Emotion: "anxious", Count: 2},
			{Emotion: "hopeful", Count: 1},
			{Emotion: "calm", Count: 1},
		}
		if len(agg.TopEmotions) != len(want) {
			t.Fatalf("TopEmotions len = %d, want %d", len(agg.TopEmotions), len(want))
		}
		for i, w := range want {
			if agg.TopEmotions[i] != w {
				t.Errorf("TopEmotions[%d] = %+v, want %+v", i, agg.TopEmotions[i], w)
			}
		}
	})

	t.Run("top emotions capped at five", func(t *testing.T) {
		agg := AggregateWeek([]MoodSample{
			sample(3, "a", "b", "c", "d", "e", "f", "g"),
		})
		if len(agg.TopEmotions) != 5 {
			t.Errorf("TopEmotions len = %d, want 5", len(agg.TopEmotions))
		}
	})
}

func TestPregnancyWeek(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		want    int
	}{
		{name: "280 days out clamps to week 1", dueDate: now.AddDate(0, 0, 280), want: 1},
		{name: "70 days out", dueDate: now.AddDate(0, 0, 70), want: 30},
		{name: "due today", dueDate: now, want: 40},
		{name: "14 days overdue", dueDate: now.AddDate(0, 0, -14), want: 42},
		{name: "long overdue clamps to 42", dueDate: now.AddDate(0, 0, -90), want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PregnancyWeek(tt.dueDate, now); got != tt.want {
				t.Errorf("PregnancyWeek() = %d, want %d", got, tt.want)
			}
		})
	}
}
