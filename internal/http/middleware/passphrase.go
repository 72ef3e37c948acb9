package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
)

const PassphraseHeader = "X-Admin-Passphrase"

// HashPassphrase is the stored form of the admin passphrase.
func HashPassphrase(pass string) string {
	sum := sha256.Sum256([]byte(pass))
	return hex.EncodeToString(sum[:])
}

// Passphrase gates admin routes against the hash held in the master record.
// hashFn is consulted per request so a passphrase change applies without a
// restart. An empty stored hash means first-run: access is open so the
// initial passphrase can be set.
func Passphrase(hashFn func() string) gin.HandlerFunc {
	return func(c *gin.Context) {
		required := hashFn()
		if required == "" {
			c.Next()
			return
		}
		given := HashPassphrase(c.GetHeader(PassphraseHeader))
		if subtle.ConstantTimeCompare([]byte(given), []byte(required)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid admin passphrase",
				},
			})
			return
		}
		c.Next()
	}
}
