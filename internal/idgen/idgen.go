// Package idgen issues identifiers for accounts and snapshots.
package idgen

import "github.com/google/uuid"

type Generator interface {
	NewID() string
}

// UUIDGenerator issues version 7 UUIDs: a millisecond timestamp followed by
// random bits. Within one process the values are monotonically increasing.
type UUIDGenerator struct{}

func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

func (UUIDGenerator) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// entropy source failure; fall back to a purely random ID
		return uuid.NewString()
	}
	return id.String()
}
