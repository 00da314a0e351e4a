// Package stats holds the pure aggregation helpers behind the dashboard
// and chart endpoints. None of these functions mutate their inputs; each
// call allocates its result from scratch.
package stats

import (
	"sort"
	"time"

	"personalfit/trainer-app/internal/domain"
)

// CountBy groups items by the extracted key and counts each group.
func CountBy[T any](items []T, key func(T) string) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[key(item)]++
	}
	return counts
}

// RankEntry is one row of a TopN ranking.
type RankEntry struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// TopN ranks groups by descending count, truncated to n entries.
// Ties keep the order in which their keys first appear in items.
func TopN[T any](items []T, key func(T) string, n int) []RankEntry {
	counts := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]RankEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, RankEntry{Key: k, Count: counts[k]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// WithinLastDays selects the items whose timestamp falls within the last
// `days` days relative to the supplied instant.
func WithinLastDays[T any](items []T, days int, now time.Time, at func(T) time.Time) []T {
	cutoff := now.AddDate(0, 0, -days)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if at(item).After(cutoff) {
			out = append(out, item)
		}
	}
	return out
}

// ScheduleRow is one weekday of the weekly training schedule.
type ScheduleRow struct {
	Day      string `json:"day"`
	Workouts int    `json:"workouts"`
	Minutes  int    `json:"minutes"`
}

// WeeklySchedule produces one row per fixed weekday label, in weekday
// order, counting the workouts scheduled on that day and summing their
// estimated duration. Days with no workouts appear zero-filled.
func WeeklySchedule(workouts []domain.Workout) []ScheduleRow {
	rows := make([]ScheduleRow, 0, len(domain.WeekDays))
	for _, day := range domain.WeekDays {
		row := ScheduleRow{Day: day}
		for i := range workouts {
			if workouts[i].DayOfWeek != day {
				continue
			}
			row.Workouts++
			row.Minutes += workouts[i].EstimatedMinutes()
		}
		rows = append(rows, row)
	}
	return rows
}

// VolumePoint is one charted workout log: total load volume paired with
// the session duration.
type VolumePoint struct {
	Date     time.Time `json:"date"`
	Volume   float64   `json:"volume"`
	Duration int       `json:"duration"` // minutes
}

// VolumeTimeline charts the most recent n workout logs in chronological
// order. Volume per log is the sum over all recorded sets of weight x
// reps, with missing weight counting as zero.
func VolumeTimeline(logs []domain.WorkoutLog, n int) []VolumePoint {
	recent := make([]domain.WorkoutLog, len(logs))
	copy(recent, logs)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if n >= 0 && len(recent) > n {
		recent = recent[:n]
	}

	// Reverse the newest-first selection so the chart reads left to right.
	points := make([]VolumePoint, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		log := recent[i]
		points = append(points, VolumePoint{
			Date:     log.Date,
			Volume:   log.TotalVolume(),
			Duration: log.Duration,
		})
	}
	return points
}

// MonthBucket is one month of the achievement timeline.
type MonthBucket struct {
	Month string `json:"month"` // "2006-01"
	Total int    `json:"total"`
}

// MonthlyTimeline buckets achievements by the year-month they were
// unlocked, in chronological order.
func MonthlyTimeline(achievements []domain.Achievement) []MonthBucket {
	totals := CountBy(achievements, func(a domain.Achievement) string {
		return a.UnlockedAt.Format("2006-01")
	})

	buckets := make([]MonthBucket, 0, len(totals))
	for month, total := range totals {
		buckets = append(buckets, MonthBucket{Month: month, Total: total})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})
	return buckets
}
