package planner

import (
	"regexp"
	"strings"
)

// stopwords tidak ikut dimasukkan ke daftar keyword
var stopwords = map[string]struct{}{
	"the": {}, "is": {}, "in": {}, "at": {}, "to": {}, "and": {},
	"a": {}, "of": {}, "on": {}, "for": {}, "with": {}, "that": {},
	"this": {}, "as": {}, "it": {}, "by": {}, "from": {}, "an": {},
	"be": {}, "are": {}, "or": {}, "was": {},
}

// token = rangkaian 2+ huruf; angka dan huruf tunggal tidak dihitung
var wordPattern = regexp.MustCompile(`\b[a-z]{2,}\b`)

// Frasa yang menandakan task masih berupa niat, bukan pekerjaan konkret.
var procrastinationPhrases = []string{
	"start", "research", "plan", "think about", "figure out", "conceptualize",
}

var procrastinationPatterns = compilePhrases(procrastinationPhrases)

func compilePhrases(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(phrase)+`\b`))
	}
	return patterns
}

// ExtractKeywords mengambil keyword dari judul task: lowercase, buang
// stop-word, lalu gabungkan dengan ", ". Urutan kemunculan dipertahankan.
func ExtractKeywords(title string) string {
	words := wordPattern.FindAllString(strings.ToLower(title), -1)
	var filtered []string
	for _, word := range words {
		if _, skip := stopwords[word]; !skip {
			filtered = append(filtered, word)
		}
	}
	return strings.Join(filtered, ", ")
}

// IsProcrastinationProne mengecek apakah nama task mengandung salah satu
// frasa procrastination sebagai kata utuh (case-insensitive). Hanya
// dipakai sebagai sinyal di dashboard, bukan validasi.
func IsProcrastinationProne(taskName string) bool {
	for _, pattern := range procrastinationPatterns {
		if pattern.MatchString(taskName) {
			return true
		}
	}
	return false
}
