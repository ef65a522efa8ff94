package domain

import "time"

// Employee is an account record. PasswordHash is opaque and must never be
// serialized into a response.
type Employee struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Profile holds the personal data owned by exactly one employee. At most one
// profile exists per employee; it is created lazily by the first add.
type Profile struct {
	ID         int64
	Name       string
	Phone      string
	Age        int
	EmployeeID int64
}

// Identity is the authenticated caller, as proven by the session token.
// It is threaded explicitly into every service call rather than read
// ambiently from the request context inside services.
type Identity struct {
	ID    int64
	Email string
	Role  Role
}
