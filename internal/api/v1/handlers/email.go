package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"edunet-planner/internal/config"
	"edunet-planner/internal/planner"
	"edunet-planner/internal/store"
	"edunet-planner/pkg/logger"
)

// EmailTasks mengirim seluruh task user ke alamat email user yang
// sedang login. Gagal kirim (kredensial atau transport) dilaporkan ke
// caller apa adanya, tanpa retry.
func EmailTasks(c *fiber.Ctx) error {
	userEmail := c.Locals("userEmail").(string)

	if config.Mailer == nil {
		logger.ErrorLogger.Error("Mailer not configured")
		return c.Status(500).JSON(fiber.Map{
			"message": "Email sender not configured",
			"success": false,
			"status":  500,
		})
	}

	tasks := planner.Backfill(store.LoadTasks(userEmail))
	if err := config.Mailer.SendTaskEmail(userEmail, tasks); err != nil {
		logger.ErrorLogger.Error("Error sending task email",
			zap.String("email", userEmail), zap.Error(err))
		return c.Status(500).JSON(fiber.Map{
			"message": "Failed to send email",
			"errors":  err.Error(),
			"success": false,
			"status":  500,
		})
	}

	logger.AuditLogger.Info("Task email sent", zap.String("email", userEmail))
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Tasks emailed to %s", userEmail),
		"success": true,
		"status":  200,
	})
}
