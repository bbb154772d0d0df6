// Package uuid generates and validates the time-ordered identifiers used as
// primary keys for every record.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a new UUIDv7 string. UUIDv7 values sort by creation time,
// which keeps b-tree inserts on the primary key append-only.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Entropy failure: fall back to a random v4 id.
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates s and returns it in canonical lower-case form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid reports whether s is a valid UUID.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
