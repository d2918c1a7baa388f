// Package insights derives summary statistics from a user's mood
// history. All derivations are pure and recomputed on demand from the
// full newest-first history.
package insights

import (
	"github.com/mindmate-ai/backend/internal/model/mood"
)

// Trend is the qualitative direction of the two most recent scores.
type Trend string

const (
	TrendUp      Trend = "up"
	TrendDown    Trend = "down"
	TrendNeutral Trend = "neutral"
)

// timelineWindow is the number of recent entries shown in the timeline.
const timelineWindow = 7

// defaultScore is assigned to free-text moods outside the canonical
// set, treated as neutral-leaning-low rather than an error.
const defaultScore = 2

var moodScores = map[string]int{
	mood.Great:    4,
	mood.Okay:     3,
	mood.Sad:      2,
	mood.Stressed: 1,
}

// Score maps a mood value to its numeric score.
func Score(m string) int {
	if score, ok := moodScores[m]; ok {
		return score
	}
	return defaultScore
}

// TimelinePoint reduces one entry to its calendar day and score.
type TimelinePoint struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Summary aggregates a user's mood history.
type Summary struct {
	Count        int             `json:"count"`
	AverageScore float64         `json:"averageScore"`
	Trend        Trend           `json:"trend"`
	Distribution map[string]int  `json:"distribution"`
	Timeline     []TimelinePoint `json:"timeline"`
}

// Summarize computes the summary for a newest-first mood history. An
// empty history yields a zero-count summary rather than an error.
func Summarize(entries []mood.Entry) Summary {
	summary := Summary{
		Count:        len(entries),
		Trend:        trend(entries),
		Distribution: distribution(entries),
		Timeline:     timeline(entries),
	}

	if len(entries) > 0 {
		total := 0
		for _, entry := range entries {
			total += Score(entry.Mood)
		}
		summary.AverageScore = float64(total) / float64(len(entries))
	}

	return summary
}

func trend(entries []mood.Entry) Trend {
	if len(entries) < 2 {
		return TrendNeutral
	}

	recent := Score(entries[0].Mood)
	previous := Score(entries[1].Mood)
	switch {
	case recent > previous:
		return TrendUp
	case recent < previous:
		return TrendDown
	default:
		return TrendNeutral
	}
}

func distribution(entries []mood.Entry) map[string]int {
	counts := make(map[string]int, len(entries))
	for _, entry := range entries {
		counts[entry.Mood]++
	}
	return counts
}

// timeline reduces the most recent entries to daily points, reversed
// into chronological order for charting.
func timeline(entries []mood.Entry) []TimelinePoint {
	window := entries
	if len(window) > timelineWindow {
		window = window[:timelineWindow]
	}

	points := make([]TimelinePoint, 0, len(window))
	for i := len(window) - 1; i >= 0; i-- {
		points = append(points, TimelinePoint{
			Date:  window[i].Timestamp.Format("2006-01-02"),
			Score: Score(window[i].Mood),
		})
	}
	return points
}
