package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edunet-planner/internal/config"
	"edunet-planner/internal/models"
)

func useTempDataDir(t *testing.T) {
	t.Helper()
	config.DataDir = t.TempDir()
}

func TestRegisterAndVerify(t *testing.T) {
	useTempDataDir(t)

	require.NoError(t, Register("Student@Example.com ", "secret123"))

	// email dinormalisasi: verify harus cocok case-insensitive
	assert.True(t, Verify("student@example.com", "secret123"))
	assert.True(t, Verify("  STUDENT@EXAMPLE.COM", "secret123"))
	assert.False(t, Verify("student@example.com", "wrongpass"))
	assert.False(t, Verify("other@example.com", "secret123"))
}

func TestRegisterDuplicate(t *testing.T) {
	useTempDataDir(t)

	require.NoError(t, Register("student@example.com", "secret123"))
	// registrasi kedua dengan email ternormalisasi sama harus ditolak
	err := Register(" STUDENT@example.com", "otherpass")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestLoadCredentialsMissingOrMalformed(t *testing.T) {
	useTempDataDir(t)
	assert.Empty(t, LoadCredentials(), "missing file loads as empty set")

	// header tanpa kolom yang diharapkan dianggap rusak
	path := filepath.Join(config.DataDir, "users.csv")
	require.NoError(t, os.WriteFile(path, []byte("foo,bar\nx,y\n"), 0644))
	assert.Empty(t, LoadCredentials())
}

func TestSanitizeEmailForFilename(t *testing.T) {
	assert.Equal(t, "student_example.com", SanitizeEmailForFilename("Student@example.com"))
	assert.Equal(t, "a_b_c.d-e_f", SanitizeEmailForFilename("a+b@c.d-e_f"))
}

func TestFilenameFor(t *testing.T) {
	useTempDataDir(t)
	assert.Equal(t,
		filepath.Join(config.DataDir, "tasks_student_example.com.csv"),
		FilenameFor("student@example.com"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	days := 4
	tasks := []models.Task{
		{
			Name: "Read Chapter 5", Course: "History", DueDate: "2026-09-02",
			Effort: "Medium", Type: "Reading", UserPriority: "High",
			AIPriority: "High", Status: models.StatusPending,
			Keywords: "read, chapter", DaysUntilDue: &days,
		},
		{
			Name: "Old essay", Course: "English", Status: models.StatusCompleted,
			ActualPriority: "Low", ActualEffortRating: "Longer",
			CompletedDate: "2026-08-20",
		},
	}
	require.NoError(t, SaveTasks(email, tasks))

	loaded := LoadTasks(email)
	assert.Equal(t, tasks, loaded)
}

func TestLoadTasksMissingFile(t *testing.T) {
	useTempDataDir(t)
	assert.Empty(t, LoadTasks("nobody@example.com"))
}

func TestLoadTasksMalformedFile(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	// header tanpa kolom Task Name -> koleksi kosong, bukan error
	require.NoError(t, os.WriteFile(FilenameFor(email), []byte("a,b,c\n1,2,3\n"), 0644))
	assert.Empty(t, LoadTasks(email))

	// CSV dengan quote tidak seimbang juga jatuh ke koleksi kosong
	require.NoError(t, os.WriteFile(FilenameFor(email), []byte("Task Name\n\"broken\n"), 0644))
	assert.Empty(t, LoadTasks(email))
}

func TestLoadTasksDefaultsMissingColumns(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	// file lama yang hanya punya sebagian kolom
	content := "Task Name,Course,Status\nRead Chapter 5,History,Pending\n"
	require.NoError(t, os.WriteFile(FilenameFor(email), []byte(content), 0644))

	loaded := LoadTasks(email)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Read Chapter 5", loaded[0].Name)
	assert.Equal(t, "History", loaded[0].Course)
	assert.Equal(t, models.StatusPending, loaded[0].Status)
	assert.Equal(t, "", loaded[0].Keywords)
	assert.Nil(t, loaded[0].DaysUntilDue)
}

func TestAddTaskComputesDerivedFields(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	dueDate := time.Now().AddDate(0, 0, 3).Format(models.DateLayout)
	require.NoError(t, AddTask(email, models.Task{
		Name: "Read Chapter 5 and Review Notes", Course: "History",
		DueDate: dueDate, Effort: "High", Type: "Reading", UserPriority: "Medium",
	}))

	loaded := LoadTasks(email)
	require.Len(t, loaded, 1)
	task := loaded[0]
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, "read, chapter, review, notes", task.Keywords)
	assert.Equal(t, "Medium", task.AIPriority, "AI priority mirrors user priority")
	require.NotNil(t, task.DaysUntilDue)
	assert.Equal(t, 3, *task.DaysUntilDue)
	assert.Empty(t, task.CompletedDate)
	assert.Empty(t, task.ActualPriority)
	assert.Empty(t, task.ActualEffortRating)
}

func TestCompleteTask(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	dueDate := time.Now().AddDate(0, 0, 2).Format(models.DateLayout)
	require.NoError(t, AddTask(email, models.Task{
		Name: "Write essay", Course: "English", DueDate: dueDate,
		Effort: "Low", Type: "Assignment", UserPriority: "Low",
	}))

	require.NoError(t, CompleteTask(email, "Write essay", "High", "Longer"))

	loaded := LoadTasks(email)
	require.Len(t, loaded, 1)
	task := loaded[0]
	assert.Equal(t, models.StatusCompleted, task.Status)
	assert.Equal(t, "High", task.ActualPriority)
	assert.Equal(t, "Longer", task.ActualEffortRating)
	assert.Equal(t, time.Now().Format(models.DateLayout), task.CompletedDate)

	// sudah tidak ada task Pending dengan nama itu
	assert.ErrorIs(t, CompleteTask(email, "Write essay", "Low", "Shorter"), ErrTaskNotFound)
}

func TestCompleteTaskNotFound(t *testing.T) {
	useTempDataDir(t)
	assert.ErrorIs(t, CompleteTask("student@example.com", "Missing", "Low", "Shorter"), ErrTaskNotFound)
}

func TestCompleteTaskFirstPendingMatch(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	require.NoError(t, AddTask(email, models.Task{Name: "Review notes", Course: "Math", Effort: "Low", UserPriority: "Low"}))
	require.NoError(t, AddTask(email, models.Task{Name: "Review notes", Course: "Physics", Effort: "Low", UserPriority: "Low"}))

	require.NoError(t, CompleteTask(email, "Review notes", "Medium", "As Estimated"))

	loaded := LoadTasks(email)
	require.Len(t, loaded, 2)
	assert.Equal(t, models.StatusCompleted, loaded[0].Status, "first match completes")
	assert.Equal(t, models.StatusPending, loaded[1].Status, "duplicate stays pending")
}

func TestDeleteTask(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	require.NoError(t, AddTask(email, models.Task{Name: "Review notes", Course: "Math", Effort: "Low", UserPriority: "Low"}))
	require.NoError(t, AddTask(email, models.Task{Name: "Review notes", Course: "Physics", Effort: "Low", UserPriority: "Low"}))
	require.NoError(t, AddTask(email, models.Task{Name: "Write essay", Course: "English", Effort: "Low", UserPriority: "Low"}))

	// hapus semua task dengan nama yang sama
	require.NoError(t, DeleteTask(email, "Review notes"))
	loaded := LoadTasks(email)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Write essay", loaded[0].Name)

	// nama yang tidak ada: no-op, bukan error
	require.NoError(t, DeleteTask(email, "Missing"))
	assert.Len(t, LoadTasks(email), 1)
}

func TestDeleteCompletedTask(t *testing.T) {
	useTempDataDir(t)
	email := "student@example.com"

	require.NoError(t, AddTask(email, models.Task{Name: "Write essay", Course: "English", Effort: "Low", UserPriority: "Low"}))
	require.NoError(t, CompleteTask(email, "Write essay", "Low", "Shorter"))
	require.NoError(t, DeleteTask(email, "Write essay"))
	assert.Empty(t, LoadTasks(email), "deleted completed task disappears from subsequent loads")
}

func TestTaskOwnershipIsPerUser(t *testing.T) {
	useTempDataDir(t)

	require.NoError(t, AddTask("a@example.com", models.Task{Name: "Task A", Course: "Math", Effort: "Low", UserPriority: "Low"}))
	require.NoError(t, AddTask("b@example.com", models.Task{Name: "Task B", Course: "Math", Effort: "Low", UserPriority: "Low"}))

	assert.Len(t, LoadTasks("a@example.com"), 1)
	assert.Len(t, LoadTasks("b@example.com"), 1)
	assert.Equal(t, "Task A", LoadTasks("a@example.com")[0].Name)
}
