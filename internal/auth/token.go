package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signature, malformed input, and expiry. Callers
// respond with the same 401 body in all three cases.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenValidity is how long an issued session token stays valid.
const TokenValidity = 7 * 24 * time.Hour

// Claims carried by a session token. Stateless: there is no revocation list,
// logout is purely client-side.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), validity: TokenValidity}
}

// Issue signs a token for the given identity.
func (s *TokenService) Issue(userID uint, email, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validity)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})
	return token.SignedString(s.secret)
}

// Verify parses and validates a token string and returns its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
