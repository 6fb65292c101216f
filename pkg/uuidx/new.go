package uuidx

import "github.com/google/uuid"

// New generates a version 7 UUID. It panics if the random source fails.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString is New in its canonical string form.
func NewString() string {
	return New().String()
}

// Valid reports whether s is a canonical version 7 UUID string, the form
// NewString produces.
func Valid(s string) bool {
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	return id.Version() == 7 && id.String() == s
}
