package models

// Session binds an opaque token to one user. Sessions never expire.
type Session struct {
	Token     string `json:"token" db:"token"`
	UserID    string `json:"userId" db:"user_id"`
	CreatedAt int64  `json:"-" db:"created_at"`
}
