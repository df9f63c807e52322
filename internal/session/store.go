package session

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"c4inventario/internal/config"
)

// Session is the only client-side state that survives across page loads: the
// backend bearer token plus the cached claim set decoded from it.
type Session struct {
	Token  string `json:"token"`
	Claims Claims `json:"claims"`
}

// Store persists sessions in an authenticated, encrypted cookie.
type Store struct {
	codec      *securecookie.SecureCookie
	cookieName string
	secure     bool
}

// NewStore builds a cookie store from the configured securecookie keys.
func NewStore(cfg config.SessionConfig) *Store {
	codec := securecookie.New([]byte(cfg.HashKey), []byte(cfg.BlockKey))
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Store{
		codec:      codec,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
	}
}

// Save writes the session cookie. The cookie lifetime tracks the token
// expiry, so the browser drops it around the same time the guard would.
func (s *Store) Save(w http.ResponseWriter, sess Session) error {
	encoded, err := s.codec.Encode(s.cookieName, sess)
	if err != nil {
		return err
	}

	cookie := &http.Cookie{
		Name:     s.cookieName,
		Value:    encoded,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if sess.Claims.ExpiresAt != nil {
		cookie.Expires = sess.Claims.ExpiresAt.Time
	}

	http.SetCookie(w, cookie)
	return nil
}

// Load reads and decodes the session cookie. A missing or undecodable cookie
// returns an error; callers treat any error as "not signed in".
func (s *Store) Load(r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(s.cookieName)
	if err != nil {
		return nil, err
	}

	sess := &Session{}
	if err := s.codec.Decode(s.cookieName, cookie.Value, sess); err != nil {
		return nil, err
	}

	return sess, nil
}

// Clear expires the session cookie immediately.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
