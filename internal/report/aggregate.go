package report

import (
	"sort"
	"time"

	"tasktrack/internal/models"
)

type CategoryCount struct {
	Category string
	Count    int
}

// CountByCategory groups tasks by category, sorted by category name so the
// chart is stable between renders.
func CountByCategory(tasks []models.Task) []CategoryCount {
	counts := map[string]int{}
	for _, task := range tasks {
		counts[task.Category]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result
}

type CompletionSplit struct {
	Done       int
	Incomplete int
}

func SplitByCompletion(tasks []models.Task) CompletionSplit {
	var split CompletionSplit
	for _, task := range tasks {
		if task.Done {
			split.Done++
		} else {
			split.Incomplete++
		}
	}
	return split
}

type TrendPoint struct {
	Date  time.Time
	Count int
}

// CompletionTrend counts completed tasks per calendar date of completion,
// in chronological order. Tasks without a completion time are ignored.
func CompletionTrend(tasks []models.Task) []TrendPoint {
	counts := map[time.Time]int{}
	for _, task := range tasks {
		if !task.Done || !task.CompletedAt.Valid {
			continue
		}
		t := task.CompletedAt.Time.UTC()
		date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		counts[date]++
	}

	points := make([]TrendPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, TrendPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}
