// Package stats computes streak statistics from a user's task history.
//
// Every consumer (the stats endpoint, the leaderboard and the dashboard) goes
// through Engine so the same history always yields the same numbers.
package stats

import (
	"slices"
	"time"

	"github.com/limbo/discipline-tracker/pkg/entity"
)

// QualifyingThreshold is the number of completed tasks a day needs to extend a
// streak: half of the daily task kinds.
var QualifyingThreshold = entity.TasksPerDay / 2

// Policy decides what "consecutive" means for streak runs.
type Policy int

const (
	// DistinctDates treats neighbouring entries of the sorted list of dates
	// with data as consecutive, whatever the calendar gap between them.
	DistinctDates Policy = iota
	// CalendarDays additionally requires the dates to be one calendar day apart.
	CalendarDays
)

type Engine struct {
	policy Policy
}

func NewEngine(policy Policy) *Engine {
	return &Engine{policy: policy}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// Compute is the default engine over the distinct-dates policy.
func Compute(records []entity.TaskRecord) entity.Stats {
	return NewEngine(DistinctDates).Compute(records)
}

type day struct {
	date      time.Time
	completed int
}

// Compute reduces the full history of one user into a Stats snapshot.
// Records whose date does not parse are ignored entirely. The result does not
// depend on the order of records.
func (e *Engine) Compute(records []entity.TaskRecord) entity.Stats {
	var result entity.Stats
	byDate := make(map[string]*day)
	completed := 0
	for i := range records {
		rec := &records[i]
		date, err := time.Parse(entity.DateLayout, rec.Date)
		if err != nil {
			continue
		}
		d, ok := byDate[rec.Date]
		if !ok {
			d = &day{date: date}
			byDate[rec.Date] = d
		}
		if rec.Completed {
			d.completed++
			completed++
		}
	}
	result.TotalDays = len(byDate)
	if result.TotalDays == 0 {
		return result
	}
	expected := result.TotalDays * entity.TasksPerDay
	// half-up rounding of completed/expected*100
	result.SuccessRate = (completed*100*2 + expected) / (expected * 2)

	days := make([]*day, 0, len(byDate))
	for _, d := range byDate {
		days = append(days, d)
	}
	// newest first
	slices.SortFunc(days, func(a, b *day) int {
		return b.date.Compare(a.date)
	})

	run := 0
	current := true
	for i, d := range days {
		if e.policy == CalendarDays && i > 0 && !d.date.AddDate(0, 0, 1).Equal(days[i-1].date) {
			result.LongestStreak = max(result.LongestStreak, run)
			run = 0
			current = false
		}
		if d.completed >= QualifyingThreshold {
			run++
			if current {
				result.CurrentStreak = run
			}
			continue
		}
		result.LongestStreak = max(result.LongestStreak, run)
		run = 0
		current = false
	}
	result.LongestStreak = max(result.LongestStreak, run)
	return result
}
