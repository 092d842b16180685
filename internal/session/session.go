package session

import (
	"context"
	"errors"
)

// Session is the server-held state behind the cookie. UserID/UserName are set
// by the regular login flow, AdminID by the admin login flow; both can live on
// the same session.
type Session struct {
	ID       string `json:"-"`
	UserID   int64  `json:"userId,omitempty"`
	UserName string `json:"userName,omitempty"`
	AdminID  int64  `json:"adminId,omitempty"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

func (s *Session) Admin() bool {
	return s != nil && s.AdminID != 0
}

// ErrNoSession is returned by Store.Get when the session id is unknown or
// has expired.
var ErrNoSession = errors.New("session not found")

// Store persists sessions server-side. Save with an existing ID overwrites,
// which is how admin login augments an already-authenticated session.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Destroy(ctx context.Context, id string) error
}

type contextKey string

const sessionKey contextKey = "session"

// FromContext returns the decoded session attached by the middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey).(*Session)
	return s, ok
}

// NewContext attaches a decoded session to the request context.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}
