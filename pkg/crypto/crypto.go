package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword mengembalikan digest SHA-256 hex dari password.
// Digest ini deterministik dan tanpa salt supaya kompatibel dengan
// isi users.csv yang sudah ada; input yang sama selalu menghasilkan
// digest yang sama.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
