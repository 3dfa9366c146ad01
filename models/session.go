package models

import "time"

// Session is the per-browser state mirror held by this service: the upstream
// session cookies, the authenticated identity (nil while unauthenticated) and
// the cart mirror. The whole struct round-trips through Redis as JSON.
type Session struct {
	ID        string    `json:"id"`
	Cookies   []string  `json:"cookies,omitempty"`
	User      *User     `json:"user,omitempty"`
	Cart      Cart      `json:"cart"`
	CartOpen  bool      `json:"cartOpen"`
	CreatedAt time.Time `json:"createdAt"`
}

// Authenticated reports whether the session currently carries an identity.
func (s *Session) Authenticated() bool {
	return s.User != nil
}
