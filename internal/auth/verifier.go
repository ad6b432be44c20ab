package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired   = errors.New("auth: token expired")
	ErrInvalidToken   = errors.New("auth: invalid token")
	ErrEmptyJWTSecret = errors.New("auth: jwt secret cannot be empty")
)

// Claims результат проверки административного токена
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Verifier проверяет HS256 токены, выпущенные внешним auth-сервисом
// Выпуск токенов здесь не реализован
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier создает верификатор; пустой issuer отключает проверку iss
func NewVerifier(secret, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrEmptyJWTSecret
	}
	return &Verifier{secret: []byte(secret), issuer: issuer}, nil
}

// Verify проверяет подпись, срок действия и издателя токена
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
