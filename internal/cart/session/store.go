package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"minimart/internal/cart/domain"
)

const (
	sessionName = "minimart_session"
	cartKey     = "cart"
)

func init() {
	gob.Register(domain.Cart{})
}

// Store keeps each visitor's cart in a signed session cookie. The cart never
// touches the database; it lives and dies with the browser session.
type Store struct {
	cookies *sessions.CookieStore
}

func NewStore(secret string) *Store {
	cs := sessions.NewCookieStore([]byte(secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Store{cookies: cs}
}

// Load returns the cart for the request. A missing or undecodable cookie
// yields an empty cart; session state is best-effort, never an error.
func (s *Store) Load(r *http.Request) domain.Cart {
	sess, _ := s.cookies.Get(r, sessionName)

	if v, ok := sess.Values[cartKey]; ok {
		if cart, ok := v.(domain.Cart); ok {
			return cart
		}
	}

	return domain.Cart{}
}

func (s *Store) Save(w http.ResponseWriter, r *http.Request, cart domain.Cart) error {
	sess, _ := s.cookies.Get(r, sessionName)
	sess.Values[cartKey] = cart
	return sess.Save(r, w)
}

// Clear replaces the stored cart with an empty map, as checkout completion
// requires.
func (s *Store) Clear(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r, domain.Cart{})
}
