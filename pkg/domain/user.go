package domain

import "time"

// User represents an account owning feed subscriptions. Authentication itself
// is external; the service only resolves tokens to identities.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
