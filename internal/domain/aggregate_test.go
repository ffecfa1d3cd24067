package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reportsWith(statuses ...Status) []Report {
	out := make([]Report, len(statuses))
	for i, s := range statuses {
		out[i] = Report{ID: i + 1, Status: s, Category: "Вода"}
	}
	return out
}

func TestCountByStatus(t *testing.T) {
	t.Run("sample set", func(t *testing.T) {
		reports := reportsWith(StatusCritical, StatusInProgress, StatusResolved, StatusCritical, StatusInProgress, StatusCritical)
		got := CountByStatus(reports)
		assert.Equal(t, StatusCounts{Critical: 3, InProgress: 2, Resolved: 1}, got)
		assert.Equal(t, len(reports), got.Total())
	})

	t.Run("empty collection", func(t *testing.T) {
		assert.Equal(t, StatusCounts{}, CountByStatus(nil))
	})

	t.Run("does not modify input", func(t *testing.T) {
		reports := reportsWith(StatusResolved, StatusCritical)
		before := append([]Report(nil), reports...)
		CountByStatus(reports)
		assert.Equal(t, before, reports)
	})
}

func TestCountByStatus_SumsToTotal(t *testing.T) {
	all := []Status{StatusCritical, StatusInProgress, StatusResolved}
	for n := 0; n < 20; n++ {
		statuses := make([]Status, n)
		for i := range statuses {
			statuses[i] = all[(i*7+n)%len(all)]
		}
		got := CountByStatus(reportsWith(statuses...))
		assert.Equal(t, n, got.Total(), "n=%d", n)
	}
}

func TestStatusCounts_Of(t *testing.T) {
	c := StatusCounts{Critical: 4, InProgress: 2, Resolved: 9}
	assert.Equal(t, 4, c.Of(StatusCritical))
	assert.Equal(t, 2, c.Of(StatusInProgress))
	assert.Equal(t, 9, c.Of(StatusResolved))
	assert.Equal(t, 0, c.Of(Status("other")))
}

func TestCategoryShares(t *testing.T) {
	palette := map[string]string{"Вода": "#0EA5E9", "Воздух": "#8B5CF6"}

	t.Run("even split", func(t *testing.T) {
		reports := []Report{
			{ID: 1, Category: "Вода"},
			{ID: 2, Category: "Воздух"},
		}
		got := CategoryShares(reports, palette)
		assert.Equal(t, []CategoryAggregate{
			{Name: "Вода", Value: 50, Color: "#0EA5E9"},
			{Name: "Воздух", Value: 50, Color: "#8B5CF6"},
		}, got)
	})

	t.Run("thirds sum to 100", func(t *testing.T) {
		reports := []Report{
			{ID: 1, Category: "Вода"},
			{ID: 2, Category: "Шум"},
			{ID: 3, Category: "Почва"},
		}
		got := CategoryShares(reports, palette)
		sum := 0
		for _, s := range got {
			sum += s.Value
		}
		assert.Equal(t, 100, sum)
		assert.Equal(t, "Вода", got[0].Name)
		assert.Equal(t, fallbackColor, got[1].Color)
	})

	t.Run("first-seen order", func(t *testing.T) {
		reports := []Report{
			{ID: 1, Category: "Шум"},
			{ID: 2, Category: "Вода"},
			{ID: 3, Category: "Шум"},
			{ID: 4, Category: "Шум"},
		}
		got := CategoryShares(reports, nil)
		assert.Equal(t, "Шум", got[0].Name)
		assert.Equal(t, 75, got[0].Value)
		assert.Equal(t, 25, got[1].Value)
	})

	t.Run("empty", func(t *testing.T) {
		got := CategoryShares(nil, palette)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
