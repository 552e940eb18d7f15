package web

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack/internal/middleware"
	"tasktrack/internal/session"
	"tasktrack/internal/web/handlers"
)

func RegisterRoutes(app *fiber.App, h *handlers.Handler, store *session.Store) {
	// Auth
	app.Get("/register", h.RegisterForm)
	app.Post("/register", h.Register)
	app.Get("/login", h.LoginForm)
	app.Post("/login", h.Login)

	// Everything below requires an authenticated session
	requireLogin := middleware.RequireLogin(store)
	app.Get("/logout", requireLogin, h.Logout)

	// Tasks
	app.Get("/", requireLogin, h.Index)
	app.Post("/add", requireLogin, h.AddTask)
	app.Get("/edit/:id", requireLogin, h.EditTaskForm)
	app.Post("/edit/:id", requireLogin, h.EditTask)
	app.Get("/done/:id", requireLogin, h.MarkTaskDone)
	app.Get("/delete/:id", requireLogin, h.DeleteTask)

	// Reports
	app.Get("/analysis", requireLogin, h.Analysis)
}
