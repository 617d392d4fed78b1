package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"edunet-planner/internal/config"
	"edunet-planner/internal/models"
	"edunet-planner/internal/planner"
	"edunet-planner/internal/store"
	"edunet-planner/pkg/logger"
)

// Task handlers

// CreateTask adalah fungsi untuk menambah study task baru
func CreateTask(c *fiber.Ctx) error {
	// ambil email user dari locals
	userEmail := c.Locals("userEmail").(string)

	// struct TaskRequest menerima inputan dari user
	type TaskRequest struct {
		Name         string `json:"name" validate:"required"`
		Course       string `json:"course" validate:"required"`
		DueDate      string `json:"due_date" validate:"required,datetime=2006-01-02"`
		Effort       string `json:"effort" validate:"required,oneof=Low Medium High"`
		Type         string `json:"type" validate:"required,oneof=Reading Assignment Revision Project Other"`
		UserPriority string `json:"user_priority" validate:"required,oneof=Low Medium High"`
	}

	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in create task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	// validasi enum, effort/type/priority hanya boleh dari daftar tetap
	if !models.ValidEffort(req.Effort) || !models.ValidTaskType(req.Type) || !models.ValidPriority(req.UserPriority) {
		logger.ErrorLogger.Error("Invalid task fields in create task")
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid task fields",
			"success": false,
			"status":  400,
		})
	}

	// Derived field (keywords, days until due, AI priority) dihitung
	// di store saat task ditambahkan
	task := models.Task{
		Name:         req.Name,
		Course:       req.Course,
		DueDate:      req.DueDate,
		Effort:       req.Effort,
		Type:         req.Type,
		UserPriority: req.UserPriority,
	}
	if err := store.AddTask(userEmail, task); err != nil {
		logger.ErrorLogger.Error("Error creating task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error creating task",
			"success": false,
			"status":  500,
		})
	}

	invalidateDashboardCache(userEmail)

	logger.AuditLogger.Info("Task created successfully",
		zap.String("email", userEmail), zap.String("task", req.Name))
	return c.Status(201).JSON(fiber.Map{
		"message": "Task added successfully!",
		"success": true,
		"status":  201,
	})
}

// ListTasks adalah fungsi untuk mengambil semua task milik user
func ListTasks(c *fiber.Ctx) error {
	userEmail := c.Locals("userEmail").(string)

	// derived field yang kosong di file lama dilengkapi setelah load
	tasks := planner.Backfill(store.LoadTasks(userEmail))
	if tasks == nil {
		tasks = []models.Task{}
	}

	logger.AuditLogger.Info("Tasks fetched successfully", zap.String("email", userEmail))
	return c.JSON(fiber.Map{
		"message": "Tasks fetched successfully",
		"success": true,
		"status":  200,
		"data":    tasks,
	})
}

// CompleteTask menandai task sebagai selesai beserta feedback user
func CompleteTask(c *fiber.Ctx) error {
	userEmail := c.Locals("userEmail").(string)

	type CompleteRequest struct {
		Name           string `json:"name" validate:"required"`
		ActualPriority string `json:"actual_priority" validate:"required,oneof=Low Medium High"`
		ActualEffort   string `json:"actual_effort" validate:"required,oneof='Shorter' 'As Estimated' 'Longer'"`
	}

	var req CompleteRequest
	if err := c.BodyParser(&req); err != nil {
		logger.ErrorLogger.Error("Bad request in complete task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Bad request",
			"success": false,
			"status":  400,
		})
	}

	if err := config.Validate.Struct(req); err != nil {
		logger.ErrorLogger.Error("Validation error in complete task", zap.Error(err))
		return c.Status(400).JSON(fiber.Map{
			"message": "Validation error",
			"errors":  err.Error(),
			"success": false,
			"status":  400,
		})
	}

	if !models.ValidPriority(req.ActualPriority) || !models.ValidEffortRating(req.ActualEffort) {
		logger.ErrorLogger.Error("Invalid feedback fields in complete task")
		return c.Status(400).JSON(fiber.Map{
			"message": "Invalid feedback fields",
			"success": false,
			"status":  400,
		})
	}

	if err := store.CompleteTask(userEmail, req.Name, req.ActualPriority, req.ActualEffort); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			// task sudah tidak ada, bukan error fatal
			return c.Status(404).JSON(fiber.Map{
				"message": "Task not found",
				"success": false,
				"status":  404,
			})
		}
		logger.ErrorLogger.Error("Error completing task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error completing task",
			"success": false,
			"status":  500,
		})
	}

	invalidateDashboardCache(userEmail)

	logger.AuditLogger.Info("Task completed",
		zap.String("email", userEmail), zap.String("task", req.Name))
	return c.JSON(fiber.Map{
		"message": "Task marked as completed with feedback",
		"success": true,
		"status":  200,
	})
}

// DeleteTask menghapus semua task dengan nama tersebut
func DeleteTask(c *fiber.Ctx) error {
	userEmail := c.Locals("userEmail").(string)

	name := c.Params("name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	if name == "" {
		return c.Status(400).JSON(fiber.Map{
			"message": "Task name required",
			"success": false,
			"status":  400,
		})
	}

	// delete bersifat silent no-op jika nama tidak ditemukan
	if err := store.DeleteTask(userEmail, name); err != nil {
		logger.ErrorLogger.Error("Error deleting task", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Error deleting task",
			"success": false,
			"status":  500,
		})
	}

	invalidateDashboardCache(userEmail)

	logger.AuditLogger.Info("Task deleted",
		zap.String("email", userEmail), zap.String("task", name))
	return c.JSON(fiber.Map{
		"message": "Task deleted successfully",
		"success": true,
		"status":  200,
	})
}
