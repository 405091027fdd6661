package utils

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// NewID derives a positive 63-bit identifier from a random UUID.
func NewID() int64 {
	u := uuid.New()
	id := int64(binary.BigEndian.Uint64(u[:8]) &^ (1 << 63))
	if id == 0 {
		return NewID()
	}
	return id
}

// NewEventID returns a string id for message deduplication.
func NewEventID() string {
	return uuid.NewString()
}
