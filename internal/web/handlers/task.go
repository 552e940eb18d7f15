package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/repository"
	"tasktrack/pkg/logger"
)

type taskForm struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	Priority    string `form:"priority"`
	Category    string `form:"category"`
}

func (f taskForm) priority() int {
	p, err := strconv.Atoi(strings.TrimSpace(f.Priority))
	if err != nil || p <= 0 {
		return repository.DefaultPriority
	}
	return p
}

func (h *Handler) Index(c *fiber.Ctx) error {
	accountID, sessionID := current(c)

	filter := repository.TaskFilter{
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}

	tasks, err := h.Tasks.List(c.UserContext(), accountID, filter)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching tasks", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}
	categories, err := h.Tasks.Categories(c.UserContext(), accountID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Render("index", taskListPage{
		basePage: basePage{
			Username: h.username(c.UserContext(), accountID),
			Flashes:  h.Sessions.PopFlashes(sessionID),
		},
		Tasks:      tasks,
		Categories: categories,
		Category:   filter.Category,
		Status:     filter.Status,
	})
}

func (h *Handler) AddTask(c *fiber.Ctx) error {
	accountID, sessionID := current(c)

	var form taskForm
	if err := c.BodyParser(&form); err != nil {
		logger.ErrorLogger.Error("Bad request in add task", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Title is required.")
		return c.Redirect("/")
	}
	if err := h.Validate.Struct(form); err != nil {
		logger.AuditLogger.Warn("Validation error in add task", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Title is required.")
		return c.Redirect("/")
	}

	task, err := h.Tasks.Create(c.UserContext(), accountID,
		form.Title, form.Description, form.priority(), form.Category)
	if err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Could not add task.")
		return c.Redirect("/")
	}

	logger.AuditLogger.Info("Task created",
		zap.Int64("account_id", accountID), zap.Int64("task_id", task.ID))
	h.Sessions.Flash(sessionID, "success", "Task added.")
	return c.Redirect("/")
}

func (h *Handler) EditTaskForm(c *fiber.Ctx) error {
	accountID, sessionID := current(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		h.Sessions.Flash(sessionID, "danger", "Task not found.")
		return c.Redirect("/")
	}

	task, err := h.Tasks.Get(c.UserContext(), accountID, int64(taskID))
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.ErrorLogger.Error("Error fetching task", zap.Error(err))
		}
		h.Sessions.Flash(sessionID, "danger", "Task not found.")
		return c.Redirect("/")
	}

	categories, err := h.Tasks.Categories(c.UserContext(), accountID)
	if err != nil {
		logger.ErrorLogger.Error("Error fetching categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
	}

	return c.Render("edit_task", taskFormPage{
		basePage: basePage{
			Username: h.username(c.UserContext(), accountID),
			Flashes:  h.Sessions.PopFlashes(sessionID),
		},
		Task:       task,
		Categories: categories,
	})
}

func (h *Handler) EditTask(c *fiber.Ctx) error {
	accountID, sessionID := current(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		h.Sessions.Flash(sessionID, "danger", "Task not found.")
		return c.Redirect("/")
	}

	var form taskForm
	if err := c.BodyParser(&form); err != nil {
		logger.ErrorLogger.Error("Bad request in edit task", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Title is required.")
		return c.Redirect("/edit/" + c.Params("id"))
	}
	if err := h.Validate.Struct(form); err != nil {
		logger.AuditLogger.Warn("Validation error in edit task", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Title is required.")
		return c.Redirect("/edit/" + c.Params("id"))
	}

	err = h.Tasks.Update(c.UserContext(), accountID, int64(taskID),
		form.Title, form.Description, form.priority(), form.Category)
	if errors.Is(err, repository.ErrNotFound) {
		h.Sessions.Flash(sessionID, "danger", "Task not found.")
		return c.Redirect("/")
	}
	if err != nil {
		logger.ErrorLogger.Error("Error updating task", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Could not update task.")
		return c.Redirect("/")
	}

	logger.AuditLogger.Info("Task updated",
		zap.Int64("account_id", accountID), zap.Int("task_id", taskID))
	h.Sessions.Flash(sessionID, "success", "Task updated.")
	return c.Redirect("/")
}

func (h *Handler) MarkTaskDone(c *fiber.Ctx) error {
	accountID, sessionID := current(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		h.Sessions.Flash(sessionID, "danger", "Task not found.")
		return c.Redirect("/")
	}

	err = h.Tasks.MarkDone(c.UserContext(), accountID, int64(taskID))
	if errors.Is(err, repository.ErrNotFound) {
		h.Sessions.Flash(sessionID, "danger", "Task not found.")
		return c.Redirect("/")
	}
	if err != nil {
		logger.ErrorLogger.Error("Error marking task done", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Could not update task.")
		return c.Redirect("/")
	}

	logger.AuditLogger.Info("Task marked done",
		zap.Int64("account_id", accountID), zap.Int("task_id", taskID))
	h.Sessions.Flash(sessionID, "info", "Task marked done.")
	return c.Redirect("/")
}

func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	accountID, sessionID := current(c)

	taskID, err := c.ParamsInt("id")
	if err != nil {
		h.Sessions.Flash(sessionID, "danger", "Task not found.")
		return c.Redirect("/")
	}

	// lenient delete: removing a missing or foreign task is not an error
	if err := h.Tasks.Delete(c.UserContext(), accountID, int64(taskID)); err != nil {
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		h.Sessions.Flash(sessionID, "danger", "Could not delete task.")
		return c.Redirect("/")
	}

	logger.AuditLogger.Info("Task deleted",
		zap.Int64("account_id", accountID), zap.Int("task_id", taskID))
	h.Sessions.Flash(sessionID, "info", "Task deleted.")
	return c.Redirect("/")
}
