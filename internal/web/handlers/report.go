package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/report"
	"tasktrack/pkg/logger"
)

func (h *Handler) Analysis(c *fiber.Ctx) error {
	accountID, sessionID := current(c)

	page := analysisPage{
		basePage: basePage{Username: h.username(c.UserContext(), accountID)},
	}

	result, err := h.Reports.Generate(c.UserContext(), accountID)
	switch {
	case errors.Is(err, report.ErrNoTasks):
		h.Sessions.Flash(sessionID, "warning", "No tasks to analyze.")
	case err != nil:
		logger.ErrorLogger.Error("Error generating report", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Could not generate report.")
		return c.Redirect("/")
	default:
		page.CategoryPlot = result.CategoryPlot
		page.DonePlot = result.DonePlot
		page.TrendPlot = result.TrendPlot
	}

	page.Flashes = h.Sessions.PopFlashes(sessionID)
	return c.Render("analysis", page)
}
