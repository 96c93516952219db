package mood

import (
	"testing"
	"time"

	"ai-mindsupport-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// entriesOf builds newest-first entries, matching the order the history query
// returns them in.
func entriesOf(pairs ...struct {
	mood      string
	intensity float64
}) []*entity.MoodEntry {
	entries := make([]*entity.MoodEntry, 0, len(pairs))
	now := time.Now()
	for i, p := range pairs {
		entries = append(entries, &entity.MoodEntry{
			Id:        uuid.New(),
			UserId:    uuid.New(),
			Mood:      p.mood,
			Intensity: p.intensity,
			CreatedAt: now.Add(-time.Duration(i) * time.Hour),
		})
	}
	return entries
}

func e(mood string, intensity float64) struct {
	mood      string
	intensity float64
} {
	return struct {
		mood      string
		intensity float64
	}{mood, intensity}
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]*entity.MoodEntry{}))
}

func TestSummarizeBasic(t *testing.T) {
	entries := entriesOf(e("Happy", 8), e("Happy", 6), e("Happy", 4))

	got := Summarize(entries)

	assert.NotNil(t, got)
	assert.Equal(t, 6.0, got.AvgIntensity)
	assert.Equal(t, "Happy", got.MostCommonMood)
	assert.Equal(t, 3, got.TotalEntries)
	assert.Equal(t, 6.0, got.RecentTrend)
}

func TestSummarizeAvgRounding(t *testing.T) {
	got := Summarize(entriesOf(e("Calm", 7), e("Calm", 8), e("Calm", 8)))

	// 23/3 = 7.666..., rounded half-up to one decimal.
	assert.Equal(t, 7.7, got.AvgIntensity)
}

func TestSummarizeTieGoesToMostRecent(t *testing.T) {
	// Newest first: Anxious seen before Calm, both count 2.
	got := Summarize(entriesOf(e("Anxious", 5), e("Calm", 5), e("Anxious", 5), e("Calm", 5)))

	assert.Equal(t, "Anxious", got.MostCommonMood)
}

func TestSummarizeTrendUsesNewestSeven(t *testing.T) {
	// Newest 7 at intensity 10, three older at 1. Trend ignores the old ones.
	entries := entriesOf(
		e("Happy", 10), e("Happy", 10), e("Happy", 10), e("Happy", 10),
		e("Happy", 10), e("Happy", 10), e("Happy", 10),
		e("Sad", 1), e("Sad", 1), e("Sad", 1),
	)

	got := Summarize(entries)

	assert.Equal(t, 10.0, got.RecentTrend)
	assert.Equal(t, 7.3, got.AvgIntensity) // 73/10
	assert.Equal(t, 10, got.TotalEntries)
}

func TestSummarizeTrendFullPrecision(t *testing.T) {
	got := Summarize(entriesOf(e("Calm", 7), e("Calm", 8), e("Calm", 8)))

	// Trend is not display-rounded.
	assert.InDelta(t, 23.0/3.0, got.RecentTrend, 1e-9)
}

func TestSummarizeOutOfRangeIntensity(t *testing.T) {
	// Intensity is stored verbatim; aggregation does not clamp.
	got := Summarize(entriesOf(e("Elated", 11)))

	assert.Equal(t, 11.0, got.AvgIntensity)
	assert.Equal(t, 11.0, got.RecentTrend)
}
