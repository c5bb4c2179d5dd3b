package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/agenda-hub/internal/models"
)

var ErrInvalidToken = errors.New("invalid_token")

type claims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Admin bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Tokens signs and parses HS256 session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *Tokens) Issue(p *models.Profile) (string, Session, error) {
	now := t.now()
	sess := Session{
		UserID:    p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		IsAdmin:   p.IsAdmin,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(t.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email: sess.Email,
		Name:  sess.FullName,
		Admin: sess.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sess.UserID.String(),
			ID:        sess.TokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", Session{}, err
	}
	return signed, sess, nil
}

func (t *Tokens) Parse(raw string) (Session, error) {
	var c claims
	token, err := jwt.ParseWithClaims(raw, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil || c.ID == "" {
		return Session{}, ErrInvalidToken
	}

	return Session{
		UserID:    userID,
		Email:     c.Email,
		FullName:  c.Name,
		IsAdmin:   c.Admin,
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
