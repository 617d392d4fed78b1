package planner

import (
	"math"
	"sort"

	"edunet-planner/internal/models"
)

// Konversi estimasi effort ke jam belajar
var effortHours = map[string]float64{
	"Low":    1.0,
	"Medium": 2.5,
	"High":   5.0,
}

type TaskCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

type CountItem struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type TimelinePoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// SuggestedDailyHours menghitung saran jam belajar per hari: total jam
// dari task Pending dibagi sisa hari sampai deadline Pending terdekat
// (minimal 1 hari). Nil jika belum ada task sama sekali, 0 jika semua
// task sudah selesai. Jika tidak ada due date yang bisa diparse,
// pembaginya jatuh ke 7 hari.
func SuggestedDailyHours(tasks []models.Task) *float64 {
	if len(tasks) == 0 {
		return nil
	}

	var totalHours float64
	pending := 0
	nearest := -1
	for _, task := range tasks {
		if task.Status != models.StatusPending {
			continue
		}
		pending++
		totalHours += effortHours[task.Effort]
		if d := DaysUntilDue(task.DueDate); d != nil {
			if nearest < 0 || *d < nearest {
				nearest = *d
			}
		}
	}
	if pending == 0 {
		zero := 0.0
		return &zero
	}

	daysRemaining := 7
	if nearest >= 0 {
		daysRemaining = nearest
		if daysRemaining < 1 {
			daysRemaining = 1
		}
	}

	suggested := math.Round(totalHours/float64(daysRemaining)*10) / 10
	return &suggested
}

// Counts menghitung jumlah task per status.
func Counts(tasks []models.Task) TaskCounts {
	counts := TaskCounts{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

// TypeDistribution menghitung jumlah task per tipe untuk pie chart di
// sisi client. Tipe kosong dihitung sebagai Other.
func TypeDistribution(tasks []models.Task) []CountItem {
	counts := map[string]int{}
	for _, task := range tasks {
		label := task.Type
		if label == "" {
			label = "Other"
		}
		counts[label]++
	}
	return sortedCounts(counts, 0)
}

// CourseCounts menghitung jumlah task per course, maksimal 20 course
// dengan jumlah terbanyak. Course kosong dihitung sebagai Unknown.
func CourseCounts(tasks []models.Task) []CountItem {
	counts := map[string]int{}
	for _, task := range tasks {
		label := task.Course
		if label == "" {
			label = "Unknown"
		}
		counts[label]++
	}
	return sortedCounts(counts, 20)
}

func sortedCounts(counts map[string]int, limit int) []CountItem {
	items := make([]CountItem, 0, len(counts))
	for label, count := range counts {
		items = append(items, CountItem{Label: label, Count: count})
	}
	// Urutkan dari yang terbanyak; label sebagai tie-breaker supaya
	// hasilnya deterministik
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Label < items[j].Label
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// CompletionTimeline menghitung jumlah task selesai per tanggal,
// diurutkan dari tanggal terlama.
func CompletionTimeline(tasks []models.Task) []TimelinePoint {
	counts := map[string]int{}
	for _, task := range tasks {
		if task.Status == models.StatusCompleted && task.CompletedDate != "" {
			counts[task.CompletedDate]++
		}
	}
	points := make([]TimelinePoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, TimelinePoint{Date: date, Completed: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// ProcrastinationProneNames mengembalikan nama task Pending yang
// terdeteksi procrastination-prone.
func ProcrastinationProneNames(tasks []models.Task) []string {
	var names []string
	for _, task := range tasks {
		if task.Status == models.StatusPending && IsProcrastinationProne(task.Name) {
			names = append(names, task.Name)
		}
	}
	return names
}
