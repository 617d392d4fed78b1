package handlers

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"edunet-planner/internal/config"
	"edunet-planner/internal/planner"
	"edunet-planner/internal/store"
	"edunet-planner/pkg/logger"
)

// dashboardPayload adalah ringkasan yang dirender oleh client
type dashboardPayload struct {
	Counts               planner.TaskCounts      `json:"counts"`
	SuggestedDailyHours  *float64                `json:"suggested_daily_hours"`
	TypeDistribution     []planner.CountItem     `json:"type_distribution"`
	CourseCounts         []planner.CountItem     `json:"course_counts"`
	CompletionTimeline   []planner.TimelinePoint `json:"completion_timeline"`
	ProcrastinationProne []string                `json:"procrastination_prone"`
}

func dashboardCacheKey(email string) string {
	return fmt.Sprintf("dashboard:%s", email)
}

// invalidateDashboardCache membuang cache dashboard milik user setelah
// ada mutasi task. Tanpa Redis fungsi ini tidak melakukan apa-apa.
func invalidateDashboardCache(email string) {
	if config.RedisClient == nil {
		return
	}
	config.RedisClient.Del(config.Ctx, dashboardCacheKey(email))
}

// GetDashboard menghitung metrik dashboard dari koleksi task user
func GetDashboard(c *fiber.Ctx) error {
	userEmail := c.Locals("userEmail").(string)

	// Coba ambil dari cache Redis lebih dulu
	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(config.Ctx, dashboardCacheKey(userEmail)).Result(); err == nil {
			var payload dashboardPayload
			if err := json.Unmarshal([]byte(cached), &payload); err == nil {
				logger.AuditLogger.Info("Dashboard served from cache", zap.String("email", userEmail))
				return c.JSON(fiber.Map{
					"message": "Dashboard fetched successfully (from cache)",
					"success": true,
					"status":  200,
					"data":    payload,
				})
			}
		}
	}

	tasks := planner.Backfill(store.LoadTasks(userEmail))
	payload := dashboardPayload{
		Counts:               planner.Counts(tasks),
		SuggestedDailyHours:  planner.SuggestedDailyHours(tasks),
		TypeDistribution:     planner.TypeDistribution(tasks),
		CourseCounts:         planner.CourseCounts(tasks),
		CompletionTimeline:   planner.CompletionTimeline(tasks),
		ProcrastinationProne: planner.ProcrastinationProneNames(tasks),
	}

	// Simpan ke cache dengan waktu kadaluarsa 1 jam
	if config.RedisClient != nil {
		if payloadJSON, err := json.Marshal(payload); err == nil {
			config.RedisClient.SetEX(config.Ctx, dashboardCacheKey(userEmail), payloadJSON, time.Hour)
		}
	}

	logger.AuditLogger.Info("Dashboard fetched successfully", zap.String("email", userEmail))
	return c.JSON(fiber.Map{
		"message": "Dashboard fetched successfully",
		"success": true,
		"status":  200,
		"data":    payload,
	})
}
