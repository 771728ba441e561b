package models

// Direction tags an entry as a credit or a debit.
type Direction string

const (
	DirectionIn  Direction = "entry"
	DirectionOut Direction = "out"
)

// Entry is a single financial record owned by a user.
type Entry struct {
	ID        string    `json:"id" db:"id" example:"0c1e6a52-3d8e-4df4-9a0b-7b6d2f4c9e11"`
	UserID    string    `json:"userId" db:"user_id"`
	Value     float64   `json:"value" db:"value" example:"50"`
	Text      string    `json:"text" db:"text" example:"salary"`
	Type      Direction `json:"type" db:"type" example:"entry"`
	Date      string    `json:"date" db:"date" example:"19/10"` // DD/MM
	CreatedAt int64     `json:"-" db:"created_at"`
}

// EntryInput is a validated create/update payload.
type EntryInput struct {
	Value float64
	Text  string
	Type  Direction
}
