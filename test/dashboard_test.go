package test

import (
	"net/http"
	"testing"
	"time"

	"edunet-planner/internal/models"
)

func TestDashboardEmpty(t *testing.T) {
	app := CreateTestApp()
	token, _ := RegisterAndLogin(app, t)

	status, result := doJSON(t, app, "GET", "/dashboard", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, status)
	}
	data := result["data"].(map[string]interface{})

	counts := data["counts"].(map[string]interface{})
	if counts["total"] != float64(0) {
		t.Errorf("Expected zero tasks, got %v", counts["total"])
	}
	// tanpa task sama sekali: tidak ada saran jam belajar
	if data["suggested_daily_hours"] != nil {
		t.Errorf("Expected absent suggestion, got %v", data["suggested_daily_hours"])
	}
}

func TestDashboardSinglePendingTask(t *testing.T) {
	app := CreateTestApp()
	token, _ := RegisterAndLogin(app, t)

	// Satu task High due 3 hari lagi -> saran 5.0/3 = 1.7 jam/hari
	dueDate := time.Now().AddDate(0, 0, 3).Format(models.DateLayout)
	status, _ := doJSON(t, app, "POST", "/tasks/", token, map[string]string{
		"name":          "Start project report",
		"course":        "Computer Science",
		"due_date":      dueDate,
		"effort":        "High",
		"type":          "Project",
		"user_priority": "High",
	})
	if status != http.StatusCreated {
		t.Fatalf("Expected status %d but got %d", http.StatusCreated, status)
	}

	status, result := doJSON(t, app, "GET", "/dashboard", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, status)
	}
	data := result["data"].(map[string]interface{})

	counts := data["counts"].(map[string]interface{})
	if counts["total"] != float64(1) || counts["pending"] != float64(1) {
		t.Errorf("Unexpected counts: %v", counts)
	}
	if data["suggested_daily_hours"] != 1.7 {
		t.Errorf("Expected 1.7 suggested hours, got %v", data["suggested_daily_hours"])
	}

	// "Start ..." terdeteksi procrastination-prone
	prone, _ := data["procrastination_prone"].([]interface{})
	if len(prone) != 1 || prone[0] != "Start project report" {
		t.Errorf("Expected procrastination signal, got %v", data["procrastination_prone"])
	}

	types, _ := data["type_distribution"].([]interface{})
	if len(types) != 1 {
		t.Fatalf("Expected one type bucket, got %v", data["type_distribution"])
	}
	bucket := types[0].(map[string]interface{})
	if bucket["label"] != "Project" || bucket["count"] != float64(1) {
		t.Errorf("Unexpected type distribution: %v", bucket)
	}
}

func TestDashboardOnlyCompletedTasks(t *testing.T) {
	app := CreateTestApp()
	token, _ := RegisterAndLogin(app, t)

	dueDate := time.Now().AddDate(0, 0, 2).Format(models.DateLayout)
	doJSON(t, app, "POST", "/tasks/", token, map[string]string{
		"name":          "Write essay",
		"course":        "English",
		"due_date":      dueDate,
		"effort":        "Medium",
		"type":          "Assignment",
		"user_priority": "Low",
	})
	doJSON(t, app, "POST", "/tasks/complete", token, map[string]string{
		"name":            "Write essay",
		"actual_priority": "Low",
		"actual_effort":   "Shorter",
	})

	status, result := doJSON(t, app, "GET", "/dashboard", token, nil)
	if status != http.StatusOK {
		t.Fatalf("Expected status %d but got %d", http.StatusOK, status)
	}
	data := result["data"].(map[string]interface{})

	// semua task selesai: saran 0, bukan absent
	if data["suggested_daily_hours"] != float64(0) {
		t.Errorf("Expected 0 suggested hours, got %v", data["suggested_daily_hours"])
	}
	timeline, _ := data["completion_timeline"].([]interface{})
	if len(timeline) != 1 {
		t.Fatalf("Expected one timeline point, got %v", data["completion_timeline"])
	}
	point := timeline[0].(map[string]interface{})
	if point["date"] != time.Now().Format(models.DateLayout) || point["completed"] != float64(1) {
		t.Errorf("Unexpected timeline point: %v", point)
	}
}
