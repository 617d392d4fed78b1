package planner

import (
	"strings"
	"time"

	"edunet-planner/internal/models"
)

// DaysUntilDue menghitung sisa hari kalender sampai due date, dipotong
// di 0 untuk task yang sudah lewat. Input kosong atau tidak bisa
// diparse menghasilkan nil, bukan error.
func DaysUntilDue(dueDate string) *int {
	due, err := time.Parse(models.DateLayout, strings.TrimSpace(dueDate))
	if err != nil {
		return nil
	}
	now := time.Now()
	// Bandingkan per tanggal kalender, bukan per jam, supaya
	// "due 5 hari lagi" selalu menghasilkan 5 kapan pun dihitung.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(due.Sub(today).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

// Backfill melengkapi derived field yang masih kosong setelah load,
// misalnya pada file lama yang belum punya kolom Keywords.
func Backfill(tasks []models.Task) []models.Task {
	for i := range tasks {
		if tasks[i].Keywords == "" && tasks[i].Name != "" {
			tasks[i].Keywords = ExtractKeywords(tasks[i].Name)
		}
		if tasks[i].DaysUntilDue == nil {
			tasks[i].DaysUntilDue = DaysUntilDue(tasks[i].DueDate)
		}
	}
	return tasks
}
