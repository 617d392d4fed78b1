package store

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"edunet-planner/internal/config"
	"edunet-planner/internal/models"
	"edunet-planner/internal/planner"
)

var ErrTaskNotFound = errors.New("task not found")

// TaskColumns adalah urutan kolom pada file tasks per user. Urutan ini
// dipertahankan persis supaya file lama tetap terbaca.
var TaskColumns = []string{
	"Task Name", "Course", "Due Date", "Effort", "Type",
	"User Priority", "AI Priority", "Status", "Keywords",
	"Days Until Due", "Actual_AI_Priority", "Actual_Effort_Rating",
	"Completed Date",
}

var unsafeFilenameChars = regexp.MustCompile(`[^0-9A-Za-z\-_.]`)

// SanitizeEmailForFilename mengganti semua karakter di luar
// [0-9A-Za-z-_.] dengan "_". Catatan: dua email berbeda yang hanya
// berbeda di karakter spesial bisa menghasilkan nama yang sama.
func SanitizeEmailForFilename(email string) string {
	return unsafeFilenameChars.ReplaceAllString(strings.ToLower(email), "_")
}

// FilenameFor mengembalikan path file tasks milik user.
func FilenameFor(email string) string {
	return filepath.Join(config.DataDir, "tasks_"+SanitizeEmailForFilename(email)+".csv")
}

func taskToRow(task models.Task) []string {
	daysUntilDue := ""
	if task.DaysUntilDue != nil {
		daysUntilDue = strconv.Itoa(*task.DaysUntilDue)
	}
	return []string{
		task.Name, task.Course, task.DueDate, task.Effort, task.Type,
		task.UserPriority, task.AIPriority, task.Status, task.Keywords,
		daysUntilDue, task.ActualPriority, task.ActualEffortRating,
		task.CompletedDate,
	}
}

func rowToTask(columnIndex map[string]int, row []string) models.Task {
	field := func(column string) string {
		idx, ok := columnIndex[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	task := models.Task{
		Name:               field("Task Name"),
		Course:             field("Course"),
		DueDate:            field("Due Date"),
		Effort:             field("Effort"),
		Type:               field("Type"),
		UserPriority:       field("User Priority"),
		AIPriority:         field("AI Priority"),
		Status:             field("Status"),
		Keywords:           field("Keywords"),
		ActualPriority:     field("Actual_AI_Priority"),
		ActualEffortRating: field("Actual_Effort_Rating"),
		CompletedDate:      field("Completed Date"),
	}
	if days, err := strconv.Atoi(field("Days Until Due")); err == nil {
		task.DaysUntilDue = &days
	}
	return task
}

// LoadTasks membaca seluruh task milik user. Kolom yang hilang diisi
// string kosong sehingga setiap task dijamin punya semua field. File
// yang hilang atau rusak menghasilkan koleksi kosong, bukan error.
func LoadTasks(email string) []models.Task {
	file, err := os.Open(FilenameFor(email))
	if err != nil {
		return nil
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil || len(rows) == 0 {
		return nil
	}

	columnIndex := map[string]int{}
	for i, name := range rows[0] {
		columnIndex[name] = i
	}
	// Tanpa kolom Task Name file dianggap rusak
	if _, ok := columnIndex["Task Name"]; !ok {
		return nil
	}

	var tasks []models.Task
	for _, row := range rows[1:] {
		tasks = append(tasks, rowToTask(columnIndex, row))
	}
	return tasks
}

// SaveTasks menulis ulang seluruh file tasks milik user. Tidak ada
// locking: dua sesi untuk user yang sama bisa saling menimpa dan
// penulis terakhir yang menang.
func SaveTasks(email string, tasks []models.Task) error {
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return err
	}
	file, err := os.Create(FilenameFor(email))
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(TaskColumns); err != nil {
		return err
	}
	for _, task := range tasks {
		if err := writer.Write(taskToRow(task)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// AddTask menambahkan satu task baru dengan derived field yang sudah
// dihitung, status Pending, lalu menyimpan seluruh koleksi.
func AddTask(email string, task models.Task) error {
	task.Keywords = planner.ExtractKeywords(task.Name)
	task.DaysUntilDue = planner.DaysUntilDue(task.DueDate)
	// AI priority saat ini masih mengikuti prioritas user
	task.AIPriority = task.UserPriority
	task.Status = models.StatusPending
	task.ActualPriority = ""
	task.ActualEffortRating = ""
	task.CompletedDate = ""

	tasks := append(LoadTasks(email), task)
	return SaveTasks(email, tasks)
}

// CompleteTask menandai task Pending pertama dengan nama tersebut
// sebagai Completed, lengkap dengan feedback user dan tanggal selesai.
// Kembalikan ErrTaskNotFound jika tidak ada task Pending yang cocok.
func CompleteTask(email, name, actualPriority, actualEffortRating string) error {
	tasks := LoadTasks(email)
	for i := range tasks {
		if tasks[i].Name == name && tasks[i].Status == models.StatusPending {
			tasks[i].Status = models.StatusCompleted
			tasks[i].ActualPriority = actualPriority
			tasks[i].ActualEffortRating = actualEffortRating
			tasks[i].CompletedDate = time.Now().Format(models.DateLayout)
			return SaveTasks(email, tasks)
		}
	}
	return ErrTaskNotFound
}

// DeleteTask menghapus semua task dengan nama tersebut. Jika tidak ada
// yang cocok, file tetap ditulis ulang tanpa perubahan (no-op).
func DeleteTask(email, name string) error {
	tasks := LoadTasks(email)
	kept := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.Name != name {
			kept = append(kept, task)
		}
	}
	return SaveTasks(email, kept)
}
