package member

import "time"

// Member is a participant identity that can own studies.
type Member struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
