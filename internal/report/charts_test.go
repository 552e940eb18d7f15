package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderedSize(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Size()
}

func TestRenderCategoryChartSingleCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category.png")

	err := renderCategoryChart([]CategoryCount{{Category: "General", Count: 1}}, path)
	require.NoError(t, err)
	assert.NotZero(t, renderedSize(t, path))
}

func TestRenderCategoryChartEqualCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category.png")

	counts := []CategoryCount{
		{Category: "Errands", Count: 1},
		{Category: "Work", Count: 1},
	}
	err := renderCategoryChart(counts, path)
	require.NoError(t, err)
	assert.NotZero(t, renderedSize(t, path))
}

func TestRenderCategoryChartDistinctCounts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "category.png")

	counts := []CategoryCount{
		{Category: "Errands", Count: 1},
		{Category: "Work", Count: 3},
	}
	err := renderCategoryChart(counts, path)
	require.NoError(t, err)
	assert.NotZero(t, renderedSize(t, path))
}
