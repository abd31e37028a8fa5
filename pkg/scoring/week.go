package scoring

import "time"

// PregnancyWeek derives the gestational week from the due date:
// week = 40 - floor(daysUntilDue / 7), clamped to [1, 42]. A due date
// in the past keeps counting up until the 42-week cap.
func PregnancyWeek(dueDate, now time.Time) int {
	daysUntilDue := floorDiv(int64(dueDate.Sub(now)), int64(24*time.Hour))
	week := 40 - int(floorDiv(daysUntilDue, 7))
	if week < 1 {
		week = 1
	}
	if week > 42 {
		week = 42
	}
	return week
}

// floorDiv divides rounding toward negative infinity, so overdue
// pregnancies advance a week as soon as the day boundary passes.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
