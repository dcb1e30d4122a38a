package analytics

import (
	"sort"
	"time"
)

func distinctDates(dates []time.Time) map[time.Time]bool {
	days := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		days[civilDate(d)] = true
	}
	return days
}

// CurrentStreak walks back from today while the cursor day or the day before it
// had a workout, counting only the days that had one. A single rest day therefore
// does not end the streak, but it is not counted either.
func CurrentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	days := distinctDates(dates)

	streak := 0
	cursor := civilDate(today)
	for days[cursor] || days[cursor.AddDate(0, 0, -1)] {
		if days[cursor] {
			streak++
		}
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// LongestStreak is the longest run of consecutive calendar days with a workout.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	days := distinctDates(dates)
	sorted := make([]time.Time, 0, len(days))
	for d := range days {
		sorted = append(sorted, d)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Before(sorted[j])
	})

	longest, current := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].AddDate(0, 0, 1).Equal(sorted[i]) {
			current++
			longest = max(longest, current)
		} else {
			current = 1
		}
	}
	return longest
}
