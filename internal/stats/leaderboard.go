package stats

import (
	"sort"

	"github.com/limbo/discipline-tracker/pkg/entity"
)

type LeaderboardEntry struct {
	Rank           int          `json:"rank"`
	UserID         string       `json:"uid"`
	Name           string       `json:"name"`
	ProfilePicture *string      `json:"profile_picture"`
	Stats          entity.Stats `json:"stats"`
}

// Less orders snapshots by success rate, then current streak, then longest
// streak, all descending.
func Less(a, b entity.Stats) bool {
	if a.SuccessRate != b.SuccessRate {
		return a.SuccessRate > b.SuccessRate
	}
	if a.CurrentStreak != b.CurrentStreak {
		return a.CurrentStreak > b.CurrentStreak
	}
	return a.LongestStreak > b.LongestStreak
}

// Rank sorts entries in place, keeping the input order among ties, and assigns
// 1-based ranks.
func Rank(entries []LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return Less(entries[i].Stats, entries[j].Stats)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
}

// BuildLeaderboard groups records by owner, computes every user's snapshot with
// the engine and returns the ranked board. Users without records get zero stats.
func (e *Engine) BuildLeaderboard(users []*entity.User, records []entity.TaskRecord) []LeaderboardEntry {
	byUser := make(map[string][]entity.TaskRecord, len(users))
	for _, rec := range records {
		key := rec.UserID.String()
		byUser[key] = append(byUser[key], rec)
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		uid := u.ID.String()
		entries = append(entries, LeaderboardEntry{
			UserID:         uid,
			Name:           u.Name,
			ProfilePicture: u.ProfilePicture,
			Stats:          e.Compute(byUser[uid]),
		})
	}
	Rank(entries)
	return entries
}
