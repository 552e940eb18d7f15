package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/models"
	"tasktrack/internal/report"
	"tasktrack/internal/repository"
	"tasktrack/internal/session"
	"tasktrack/pkg/logger"
)

// Handler bundles everything the HTML handlers need. All dependencies are
// injected; there is no package-level state.
type Handler struct {
	Accounts *repository.AccountRepository
	Tasks    *repository.TaskRepository
	Sessions *session.Store
	Reports  *report.Generator
	Validate *validator.Validate
}

func New(accounts *repository.AccountRepository, tasks *repository.TaskRepository, sessions *session.Store, reports *report.Generator) *Handler {
	return &Handler{
		Accounts: accounts,
		Tasks:    tasks,
		Sessions: sessions,
		Reports:  reports,
		Validate: validator.New(),
	}
}

// basePage carries the fields every template expects from the layout.
type basePage struct {
	Username string
	Flashes  []session.FlashMessage
}

type authPage struct {
	basePage
}

type taskListPage struct {
	basePage
	Tasks      []models.Task
	Categories []string
	Category   string
	Status     string
}

type taskFormPage struct {
	basePage
	Task       *models.Task
	Categories []string
}

type analysisPage struct {
	basePage
	CategoryPlot string
	DonePlot     string
	TrendPlot    string
}

// ensureSession resolves the session cookie, creating an anonymous session
// when there is none, so flash messages survive redirects on the login and
// register pages too.
func (h *Handler) ensureSession(c *fiber.Ctx) (int64, string) {
	accountID, sessionID, err := h.Sessions.Resolve(c.Cookies(session.CookieName))
	if err == nil {
		return accountID, sessionID
	}

	cookieValue, sessionID, err := h.Sessions.Create(0)
	if err != nil {
		logger.ErrorLogger.Error("Error creating anonymous session", zap.Error(err))
		return 0, ""
	}
	h.setSessionCookie(c, cookieValue)
	return 0, sessionID
}

func (h *Handler) setSessionCookie(c *fiber.Ctx, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     session.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(h.Sessions.TTL()),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// current returns the account id and session id stored by RequireLogin.
func current(c *fiber.Ctx) (int64, string) {
	return c.Locals("accountID").(int64), c.Locals("sessionID").(string)
}

func (h *Handler) username(ctx context.Context, accountID int64) string {
	account, err := h.Accounts.GetByID(ctx, accountID)
	if err != nil {
		return ""
	}
	return account.Username
}
