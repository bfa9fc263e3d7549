package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried in staff tokens. CourseID scopes employees to the course
// whose orders they may see and mutate.
type Claims struct {
	UserID   uint   `json:"userId"`
	Role     string `json:"role"`
	CourseID uint   `json:"courseId"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint, role string, courseID uint, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Role:     role,
		CourseID: courseID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
