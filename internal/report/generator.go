package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tasktrack/internal/repository"
	"tasktrack/pkg/logger"
)

// ErrNoTasks signals that the account has nothing to analyze. It is checked
// before any aggregation runs.
var ErrNoTasks = errors.New("no tasks to analyze")

// Result carries the file names of the rendered chart artifacts, relative to
// the static directory. TrendPlot is empty when no task has been completed
// yet.
type Result struct {
	CategoryPlot string
	DonePlot     string
	TrendPlot    string
}

// Generator renders per-account chart images into a shared static directory.
// Artifact names embed the account id, so different accounts never collide;
// regenerating overwrites the previous artifacts of the same account.
type Generator struct {
	tasks     *repository.TaskRepository
	staticDir string
}

func NewGenerator(tasks *repository.TaskRepository, staticDir string) *Generator {
	return &Generator{tasks: tasks, staticDir: staticDir}
}

func (g *Generator) Generate(ctx context.Context, accountID int64) (*Result, error) {
	tasks, err := g.tasks.List(ctx, accountID, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	if err := os.MkdirAll(g.staticDir, 0755); err != nil {
		return nil, err
	}

	result := &Result{
		CategoryPlot: fmt.Sprintf("category_plot_%d.png", accountID),
		DonePlot:     fmt.Sprintf("done_plot_%d.png", accountID),
	}

	if err := renderCategoryChart(CountByCategory(tasks), filepath.Join(g.staticDir, result.CategoryPlot)); err != nil {
		return nil, err
	}
	if err := renderCompletionChart(SplitByCompletion(tasks), filepath.Join(g.staticDir, result.DonePlot)); err != nil {
		return nil, err
	}

	if trend := CompletionTrend(tasks); len(trend) > 0 {
		result.TrendPlot = fmt.Sprintf("trend_plot_%d.png", accountID)
		if err := renderTrendChart(trend, filepath.Join(g.staticDir, result.TrendPlot)); err != nil {
			return nil, err
		}
	}

	logger.AuditLogger.Info("Report generated",
		zap.Int64("account_id", accountID), zap.Int("tasks", len(tasks)))
	return result, nil
}
