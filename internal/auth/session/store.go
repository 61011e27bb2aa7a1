package session

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"storefront/internal/domain"
	apperrors "storefront/internal/errors"
)

const keyPrefix = "storefront:session:"

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Store issues signed session tokens and keeps the live session ids in
// Redis, so a logout takes effect before the token expires.
type Store struct {
	client *redis.Client
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	newID  func() string
}

func NewStore(client *redis.Client, secret string, ttl time.Duration) *Store {
	return &Store{
		client: client,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Create opens a session for email and returns the signed token.
func (s *Store) Create(ctx context.Context, email string) (string, *domain.Session, error) {
	now := s.now()
	sess := &domain.Session{
		ID:         s.newID(),
		AdminEmail: email,
		ExpiresAt:  now.Add(s.ttl).Truncate(time.Second),
	}

	if err := s.client.Set(ctx, keyPrefix+sess.ID, email, s.ttl).Err(); err != nil {
		return "", nil, apperrors.NewStorageError("storing session", err)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: sess.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("signing session token: %w", err)
	}

	return signed, sess, nil
}

// Validate returns UnauthorizedError for any token that is malformed,
// forged, expired or revoked.
func (s *Store) Validate(ctx context.Context, token string) (*domain.Session, error) {
	c, err := s.parse(token)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError()
	}

	email, err := s.client.Get(ctx, keyPrefix+c.SessionID).Result()
	if stderrors.Is(err, redis.Nil) {
		return nil, apperrors.NewUnauthorizedError()
	}
	if err != nil {
		return nil, apperrors.NewStorageError("loading session", err)
	}
	if email != c.Subject {
		return nil, apperrors.NewUnauthorizedError()
	}

	return &domain.Session{
		ID:         c.SessionID,
		AdminEmail: c.Subject,
		ExpiresAt:  c.ExpiresAt.Time,
	}, nil
}

// Revoke deletes the session behind token. Unreadable tokens have nothing
// to revoke.
func (s *Store) Revoke(ctx context.Context, token string) error {
	c, err := s.parse(token)
	if err != nil {
		return nil
	}

	if err := s.client.Del(ctx, keyPrefix+c.SessionID).Err(); err != nil {
		return apperrors.NewStorageError("revoking session", err)
	}
	return nil
}

func (s *Store) parse(token string) (*claims, error) {
	if token == "" {
		return nil, stderrors.New("empty token")
	}

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid || c.SessionID == "" {
		return nil, stderrors.New("invalid session token")
	}

	return &c, nil
}
