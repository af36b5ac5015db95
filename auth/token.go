package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	UserTokenTTL  = 7 * 24 * time.Hour
	GuestTokenTTL = 24 * time.Hour
)

// IssueUserToken signs a session token for a registered user.
func IssueUserToken(userID string) (string, error) {
	return issueToken(userID, "user", UserTokenTTL)
}

// IssueGuestToken signs a short-lived token for an anonymous shopper. Guests
// exist only as a token plus their cart snapshot; there is no database row.
func IssueGuestToken(guestID string) (string, error) {
	return issueToken(guestID, "guest", GuestTokenTTL)
}

func issueToken(id, role string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": id,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
