package report

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tasktrack/internal/models"
)

func doneAt(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func TestCountByCategory(t *testing.T) {
	tasks := []models.Task{
		{Category: "Work"},
		{Category: "Errands"},
		{Category: "Work"},
	}

	counts := CountByCategory(tasks)
	assert.Equal(t, []CategoryCount{
		{Category: "Errands", Count: 1},
		{Category: "Work", Count: 2},
	}, counts)
}

func TestSplitByCompletion(t *testing.T) {
	tasks := []models.Task{
		{Done: true},
		{Done: false},
		{Done: false},
	}

	split := SplitByCompletion(tasks)
	assert.Equal(t, CompletionSplit{Done: 1, Incomplete: 2}, split)
}

func TestCompletionTrendGroupsByDate(t *testing.T) {
	day1 := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	day1Later := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		{Done: true, CompletedAt: doneAt(day2)},
		{Done: true, CompletedAt: doneAt(day1)},
		{Done: true, CompletedAt: doneAt(day1Later)},
		{Done: false},
	}

	points := CompletionTrend(tasks)
	assert.Equal(t, []TrendPoint{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Count: 2},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Count: 1},
	}, points)
}

func TestCompletionTrendEmptyWithoutCompletions(t *testing.T) {
	tasks := []models.Task{{Done: false}, {Done: false}}
	assert.Empty(t, CompletionTrend(tasks))
}
