package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Data is the server-side record bound to a session token.
type Data struct {
	UserID    string
	Email     string
	Name      string
	Remember  bool
	CreatedAt time.Time
}

// Flash is a one-time notification displayed on the next rendered page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Store binds opaque tokens to authenticated sessions. Tokens are
// created on login/registration, destroyed on logout, and extended
// when the expiry policy changes (remember me).
//
// Flashes are keyed separately so they survive session destruction:
// the logout flash must still render for the now-anonymous client.
type Store interface {
	Create(ctx context.Context, data Data, ttl time.Duration) (token string, err error)
	Get(ctx context.Context, token string) (*Data, error)
	Destroy(ctx context.Context, token string) error
	Extend(ctx context.Context, token string, ttl time.Duration) error

	AddFlash(ctx context.Context, token string, f Flash) error
	PopFlashes(ctx context.Context, token string) ([]Flash, error)
}
