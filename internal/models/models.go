package models

// DateLayout adalah format tanggal yang dipakai di semua file CSV.
const DateLayout = "2006-01-02"

// Status task hanya boleh berisi: Pending, Completed
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
)

// Credential adalah satu baris pada users.csv.
// Password tidak pernah disimpan sebagai plaintext, hanya digest-nya.
type Credential struct {
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Task adalah satu baris pada file tasks milik user.
// DueDate dan CompletedDate disimpan sebagai string format DateLayout
// (atau kosong). DaysUntilDue nil artinya belum/tidak bisa dihitung.
type Task struct {
	Name               string `json:"name"`
	Course             string `json:"course"`
	DueDate            string `json:"due_date"`
	Effort             string `json:"effort"`
	Type               string `json:"type"`
	UserPriority       string `json:"user_priority"`
	AIPriority         string `json:"ai_priority"`
	Status             string `json:"status"`
	Keywords           string `json:"keywords"`
	DaysUntilDue       *int   `json:"days_until_due"`
	ActualPriority     string `json:"actual_priority"`
	ActualEffortRating string `json:"actual_effort_rating"`
	CompletedDate      string `json:"completed_date"`
}

// ValidEffort dan ValidPriority memakai daftar nilai yang sama
func ValidEffort(effort string) bool {
	switch effort {
	case "Low", "Medium", "High":
		return true
	default:
		return false
	}
}

func ValidPriority(priority string) bool {
	return ValidEffort(priority)
}

func ValidTaskType(taskType string) bool {
	switch taskType {
	case "Reading", "Assignment", "Revision", "Project", "Other":
		return true
	default:
		return false
	}
}

func ValidEffortRating(rating string) bool {
	switch rating {
	case "Shorter", "As Estimated", "Longer":
		return true
	default:
		return false
	}
}
