package types

import "time"

// User represents an account in the system.
type User struct {
	// ID is the unique identifier of the user. It is zero for accounts
	// held in the in-memory store, which keys on Username alone.
	ID int `json:"id" db:"id"`

	// Username is the unique login name chosen by the user. The name
	// "admin" is reserved for the pre-seeded administrator account.
	Username string `json:"username" db:"username"`

	// Password is the user's password, stored and compared in plain
	// text. This field is never exposed in API responses.
	Password string `json:"-" db:"password"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
