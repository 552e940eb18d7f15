package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/repository"
	"tasktrack/pkg/crypto"
	"tasktrack/pkg/logger"
)

type credentialsForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (h *Handler) RegisterForm(c *fiber.Ctx) error {
	_, sessionID := h.ensureSession(c)
	return c.Render("register", authPage{
		basePage: basePage{Flashes: h.Sessions.PopFlashes(sessionID)},
	})
}

func (h *Handler) Register(c *fiber.Ctx) error {
	_, sessionID := h.ensureSession(c)

	var form credentialsForm
	if err := c.BodyParser(&form); err != nil {
		logger.ErrorLogger.Error("Bad request in register", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Username and password required.")
		return c.Redirect("/register")
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := h.Validate.Struct(form); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Username and password required.")
		return c.Redirect("/register")
	}

	hash, err := crypto.HashPassword(form.Password)
	if err != nil {
		logger.ErrorLogger.Error("Error hashing password", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Could not create account.")
		return c.Redirect("/register")
	}

	account, err := h.Accounts.Create(c.UserContext(), form.Username, hash)
	if errors.Is(err, repository.ErrUsernameTaken) {
		logger.SecurityLogger.Warn("Duplicate username", zap.String("username", form.Username))
		h.Sessions.Flash(sessionID, "warning", "Username already taken.")
		return c.Redirect("/register")
	}
	if err != nil {
		logger.ErrorLogger.Error("Error creating account", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Could not create account.")
		return c.Redirect("/register")
	}

	logger.AuditLogger.Info("Account registered", zap.Int64("account_id", account.ID))
	h.Sessions.Flash(sessionID, "success", "Account created - please log in.")
	return c.Redirect("/login")
}

func (h *Handler) LoginForm(c *fiber.Ctx) error {
	_, sessionID := h.ensureSession(c)
	return c.Render("login", authPage{
		basePage: basePage{Flashes: h.Sessions.PopFlashes(sessionID)},
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	_, sessionID := h.ensureSession(c)

	var form credentialsForm
	if err := c.BodyParser(&form); err != nil {
		logger.ErrorLogger.Error("Bad request in login", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Invalid credentials.")
		return c.Redirect("/login")
	}
	form.Username = strings.TrimSpace(form.Username)

	if err := h.Validate.Struct(form); err != nil {
		logger.AuditLogger.Warn("Validation error during login", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Invalid credentials.")
		return c.Redirect("/login")
	}

	account, err := h.Accounts.GetByUsername(c.UserContext(), form.Username)
	if err != nil || !crypto.CheckPassword(account.PasswordHash, form.Password) {
		logger.SecurityLogger.Warn("Invalid credentials", zap.String("username", form.Username))
		h.Sessions.Flash(sessionID, "danger", "Invalid credentials.")
		return c.Redirect("/login")
	}

	// swap the anonymous session for an authenticated one
	h.Sessions.Destroy(sessionID)
	cookieValue, sessionID, err := h.Sessions.Create(account.ID)
	if err != nil {
		logger.ErrorLogger.Error("Error creating session", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	h.setSessionCookie(c, cookieValue)

	logger.AuditLogger.Info("Login success", zap.Int64("account_id", account.ID))
	h.Sessions.Flash(sessionID, "success", "Logged in successfully.")
	return c.Redirect("/")
}

func (h *Handler) Logout(c *fiber.Ctx) error {
	accountID, sessionID := current(c)
	h.Sessions.Destroy(sessionID)

	cookieValue, sessionID, err := h.Sessions.Create(0)
	if err == nil {
		h.setSessionCookie(c, cookieValue)
		h.Sessions.Flash(sessionID, "info", "Logged out.")
	}

	logger.AuditLogger.Info("Logout", zap.Int64("account_id", accountID))
	return c.Redirect("/login")
}
