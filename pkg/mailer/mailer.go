package mailer

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"gopkg.in/gomail.v2"

	"edunet-planner/internal/models"
)

// Kolom yang ikut dikirim di email, sama dengan tabel di dashboard
var displayColumns = []string{
	"Task Name", "Course", "Due Date", "Effort", "Type",
	"User Priority", "AI Priority", "Status",
}

type Mailer struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func New(host string, port int, sender, password string) *Mailer {
	return &Mailer{
		Host:     host,
		Port:     port,
		Sender:   sender,
		Password: password,
	}
}

func displayValue(task models.Task, column string) string {
	switch column {
	case "Task Name":
		return task.Name
	case "Course":
		return task.Course
	case "Due Date":
		return task.DueDate
	case "Effort":
		return task.Effort
	case "Type":
		return task.Type
	case "User Priority":
		return task.UserPriority
	case "AI Priority":
		return task.AIPriority
	case "Status":
		return task.Status
	default:
		return ""
	}
}

func plainBody(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("Here are your current tasks:\n\n")
	b.WriteString(strings.Join(displayColumns, " | "))
	b.WriteString("\n")
	for _, task := range tasks {
		values := make([]string, 0, len(displayColumns))
		for _, column := range displayColumns {
			values = append(values, displayValue(task, column))
		}
		b.WriteString(strings.Join(values, " | "))
		b.WriteString("\n")
	}
	return b.String()
}

func htmlBody(tasks []models.Task) string {
	var b strings.Builder
	b.WriteString("<html><body><h2>Your EDUNET Study Tasks</h2>")
	b.WriteString(`<table border="0" cellpadding="4"><tr>`)
	for _, column := range displayColumns {
		b.WriteString("<th>" + html.EscapeString(column) + "</th>")
	}
	b.WriteString("</tr>")
	for _, task := range tasks {
		b.WriteString("<tr>")
		for _, column := range displayColumns {
			b.WriteString("<td>" + html.EscapeString(displayValue(task, column)) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</table><br>")
	b.WriteString(`<p style="font-size:12px;color:gray;">Sent by EDUNET Study Planner</p>`)
	b.WriteString("</body></html>")
	return b.String()
}

// SendTaskEmail mengirim daftar task user ke alamat email user sendiri,
// versi plain text dan HTML sekaligus. Error autentikasi atau transport
// SMTP dikembalikan ke pemanggil tanpa retry.
func (m *Mailer) SendTaskEmail(recipient string, tasks []models.Task) error {
	if m.Sender == "" || m.Password == "" {
		return errors.New("email sender credentials not set, set EDUNET_EMAIL and EDUNET_EMAIL_PASSWORD in your .env")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.Sender)
	message.SetHeader("To", recipient)
	message.SetHeader("Subject", "Your EDUNET Study Tasks")
	message.SetBody("text/plain", plainBody(tasks))
	message.AddAlternative("text/html", htmlBody(tasks))

	dialer := gomail.NewDialer(m.Host, m.Port, m.Sender, m.Password)
	if err := dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
