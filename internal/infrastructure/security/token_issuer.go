package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/domain/users"
	"github.com/niyatanya/habit-tracker/internal/pkg/config"
)

type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type jwtTokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewJWTTokenIssuer creates a TokenIssuer signing HS256 tokens
func NewJWTTokenIssuer(settings *config.AuthSettings) (auth.TokenIssuer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &jwtTokenIssuer{
		secret: []byte(settings.JWTSecret),
		ttl:    settings.TokenTTL,
		issuer: settings.Issuer,
		now:    time.Now,
	}, nil
}

func (i *jwtTokenIssuer) Issue(user *users.User) (string, *auth.Session, error) {
	now := i.now()
	session := &auth.Session{
		TokenID:   uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: now.Add(i.ttl).Truncate(time.Second),
	}

	claims := sessionClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.TokenID,
			Subject:   user.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, session, nil
}

func (i *jwtTokenIssuer) Parse(token string) (*auth.Session, error) {
	claims := &sessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}

	role, err := users.ParseRole(claims.Role)
	if err != nil || claims.Subject == "" || claims.ID == "" {
		return nil, auth.ErrInvalidToken
	}

	return &auth.Session{
		TokenID:   claims.ID,
		UserID:    claims.Subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

