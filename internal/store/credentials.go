package store

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"edunet-planner/internal/config"
	"edunet-planner/internal/models"
	"edunet-planner/pkg/crypto"
)

var (
	ErrAlreadyExists      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

const credentialFile = "users.csv"

var credentialColumns = []string{"email", "password_hash"}

// NormalizeEmail membuat email menjadi kunci user yang unik:
// trim lalu lowercase.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func credentialPath() string {
	return filepath.Join(config.DataDir, credentialFile)
}

// LoadCredentials membaca seluruh isi users.csv. File yang hilang,
// rusak, atau tidak punya kolom yang diharapkan dikembalikan sebagai
// koleksi kosong, bukan error.
func LoadCredentials() []models.Credential {
	file, err := os.Open(credentialPath())
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

	// Cari posisi kolom dari header
	emailIdx, hashIdx := -1, -1
	for i, name := range rows[0] {
		switch name {
		case "email":
			emailIdx = i
		case "password_hash":
			hashIdx = i
		}
	}
	if emailIdx < 0 || hashIdx < 0 {
		return nil
	}

	var credentials []models.Credential
	for _, row := range rows[1:] {
		if emailIdx >= len(row) || hashIdx >= len(row) {
			continue
		}
		credentials = append(credentials, models.Credential{
			Email:        row[emailIdx],
			PasswordHash: row[hashIdx],
		})
	}
	return credentials
}

// SaveCredentials menulis ulang seluruh users.csv.
func SaveCredentials(credentials []models.Credential) error {
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return err
	}
	file, err := os.Create(credentialPath())
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(credentialColumns); err != nil {
		return err
	}
	for _, credential := range credentials {
		if err := writer.Write([]string{credential.Email, credential.PasswordHash}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Register mendaftarkan user baru. Email dinormalisasi dulu; jika sudah
// terdaftar kembalikan ErrAlreadyExists. Setiap registrasi menulis
// ulang seluruh file credential.
func Register(email, password string) error {
	email = NormalizeEmail(email)
	credentials := LoadCredentials()
	for _, credential := range credentials {
		if credential.Email == email {
			return ErrAlreadyExists
		}
	}
	credentials = append(credentials, models.Credential{
		Email:        email,
		PasswordHash: crypto.HashPassword(password),
	})
	return SaveCredentials(credentials)
}

// Verify mengembalikan true hanya jika ada credential dengan email
// ternormalisasi dan digest password yang sama persis.
func Verify(email, password string) bool {
	email = NormalizeEmail(email)
	hash := crypto.HashPassword(password)
	for _, credential := range LoadCredentials() {
		if credential.Email == email && credential.PasswordHash == hash {
			return true
		}
	}
	return false
}
