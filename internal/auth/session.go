// Package auth holds the authenticated-session boundary: a Session value
// identifying the signed-in clinician and a Source that owns the current
// session and notifies subscribers when it changes. The Source is
// constructed once at process start and passed to every repository; nothing
// in the module reads auth state from a package-level singleton.
package auth

import (
	"errors"
	"sync"
)

// ErrNotAuthenticated is returned by mutations attempted with no signed-in
// user. The remote store is never contacted in that case.
var ErrNotAuthenticated = errors.New("auth: no authenticated user")

// Session identifies the signed-in clinician.
type Session struct {
	UserID string
	Email  string
}

// Source holds the current session. Repositories subscribe so they can
// discard their mirrors the moment the user changes; a nil session in the
// callback means signed out.
type Source struct {
	mu      sync.RWMutex
	current *Session
	subs    []func(*Session)
}

func NewSource() *Source {
	return &Source{}
}

// Current returns the active session, or nil when signed out.
func (s *Source) Current() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// SignIn replaces the active session and notifies subscribers.
func (s *Source) SignIn(sess Session) {
	s.mu.Lock()
	cp := sess
	s.current = &cp
	subs := append([]func(*Session){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(&cp)
	}
}

// SignOut clears the active session and notifies subscribers with nil.
func (s *Source) SignOut() {
	s.mu.Lock()
	s.current = nil
	subs := append([]func(*Session){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(nil)
	}
}

// Subscribe registers a session-change callback. Callbacks run synchronously
// on the goroutine that changed the session.
func (s *Source) Subscribe(fn func(*Session)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}
