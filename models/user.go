package models

// User is the authenticated identity mirrored from the upstream session check.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}
