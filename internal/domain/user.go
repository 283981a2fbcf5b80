package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is a dashboard login. Roles are out of scope: any authenticated
// user can read reports and upload spreadsheets.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Claims is the JWT payload issued on login.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
