package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// CookieName is the name of the session cookie set by the web layer.
const CookieName = "session_token"

// ErrNoSession is returned when a cookie does not resolve to an active
// session: missing, expired, tampered or destroyed.
var ErrNoSession = errors.New("no active session")

// FlashMessage is a one-shot status message consumed on the next render.
// Category is one of: success, warning, danger, info.
type FlashMessage struct {
	Category string
	Text     string
}

type entry struct {
	accountID int64
	expiresAt time.Time
	flashes   []FlashMessage
}

// Store maps session ids to account ids with a fixed lifetime. The cookie
// handed to the browser is the session id wrapped in an HS256-signed token,
// so a guessed id is not enough to take over a session. An account id of
// zero marks an anonymous session, used only to carry flash messages across
// the login and register pages.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
	secret   []byte
	ttl      time.Duration
	done     chan struct{}
}

func NewStore(secret []byte, ttl time.Duration) *Store {
	store := &Store{
		sessions: make(map[string]*entry),
		secret:   secret,
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go store.sweep()
	return store
}

// drop expired entries so abandoned sessions do not pile up
func (s *Store) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.expiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// Close stops the background sweep. The store itself stays usable.
func (s *Store) Close() {
	close(s.done)
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create opens a session bound to the given account id and returns the
// signed cookie value along with the session id.
func (s *Store) Create(accountID int64) (string, string, error) {
	id := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)

	s.mu.Lock()
	s.sessions[id] = &entry{accountID: accountID, expiresAt: expiresAt}
	s.mu.Unlock()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"exp": expiresAt.Unix(),
		"iat": time.Now().Unix(),
	})
	cookieValue, err := token.SignedString(s.secret)
	if err != nil {
		return "", "", err
	}
	return cookieValue, id, nil
}

// Resolve verifies the cookie value and returns the account id and session
// id it is bound to.
func (s *Store) Resolve(cookieValue string) (int64, string, error) {
	if cookieValue == "" {
		return 0, "", ErrNoSession
	}

	token, err := jwt.Parse(cookieValue, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, "", ErrNoSession
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", ErrNoSession
	}
	id, ok := claims["sid"].(string)
	if !ok {
		return 0, "", ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return 0, "", ErrNoSession
	}
	if time.Now().After(sess.expiresAt) {
		delete(s.sessions, id)
		return 0, "", ErrNoSession
	}
	return sess.accountID, id, nil
}

// Destroy invalidates a session. Destroying an unknown id is a no-op.
func (s *Store) Destroy(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Flash queues a one-shot message on the session.
func (s *Store) Flash(id, category, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.flashes = append(sess.flashes, FlashMessage{Category: category, Text: text})
	}
}

// PopFlashes returns the queued messages and clears the queue.
func (s *Store) PopFlashes(id string) []FlashMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || len(sess.flashes) == 0 {
		return nil
	}
	flashes := sess.flashes
	sess.flashes = nil
	return flashes
}
