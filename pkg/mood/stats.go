package mood

import (
	"math"

	"ai-mindsupport-be/internal/entity"
)

// TrendWindow is how many of the newest entries feed the recency trend.
const TrendWindow = 7

// Summary is derived from stored entries and never persisted.
type Summary struct {
	AvgIntensity   float64 `json:"avg_intensity"`
	MostCommonMood string  `json:"most_common_mood"`
	TotalEntries   int     `json:"total_entries"`
	RecentTrend    float64 `json:"recent_trend"`
}

// Summarize aggregates mood entries into a summary. entries must be ordered
// newest first, as the history query returns them. Returns nil when there is
// nothing to aggregate.
//
// AvgIntensity is rounded half-up to one decimal. RecentTrend is the mean over
// the newest min(TrendWindow, n) entries at full precision; display rounding
// belongs to the client. Mood ties go to whichever mood was seen first in
// newest-first order, biasing ties toward more recent moods.
func Summarize(entries []*entity.MoodEntry) *Summary {
	if len(entries) == 0 {
		return nil
	}

	var sum float64
	counts := make(map[string]int, len(entries))
	order := make([]string, 0, len(entries))
	for _, e := range entries {
		sum += e.Intensity
		if _, seen := counts[e.Mood]; !seen {
			order = append(order, e.Mood)
		}
		counts[e.Mood]++
	}

	mostCommon := ""
	best := 0
	for _, m := range order {
		if counts[m] > best {
			mostCommon = m
			best = counts[m]
		}
	}

	trendN := TrendWindow
	if len(entries) < trendN {
		trendN = len(entries)
	}
	var trendSum float64
	for _, e := range entries[:trendN] {
		trendSum += e.Intensity
	}

	return &Summary{
		AvgIntensity:   math.Round(sum/float64(len(entries))*10) / 10,
		MostCommonMood: mostCommon,
		TotalEntries:   len(entries),
		RecentTrend:    trendSum / float64(trendN),
	}
}
