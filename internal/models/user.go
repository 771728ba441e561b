package models

// User is a registered wallet owner. PasswordHash never leaves the server.
type User struct {
	ID           string `json:"id" db:"id" example:"8b0f1c2e-9a4d-4a57-b8a5-3f1f3c9e2d10"` // User ID
	Name         string `json:"name" db:"name" example:"ana"`                                // Display name
	Email        string `json:"email" db:"email" example:"a@x.com"`                          // User email
	PasswordHash string `json:"-" db:"password_hash"`
	CreatedAt    int64  `json:"-" db:"created_at"`
}

// Profile is the public part of a User returned together with a session token.
type Profile struct {
	ID    string `json:"id" example:"8b0f1c2e-9a4d-4a57-b8a5-3f1f3c9e2d10"`
	Name  string `json:"name" example:"ana"`
	Email string `json:"email" example:"a@x.com"`
	Token string `json:"token" example:"1d5c0b8e-7f0b-4cb1-a1f4-5c1f5f6e0c2a"`
}

func (u *User) Profile(token string) Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Token: token}
}
