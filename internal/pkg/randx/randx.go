/*
Package randx provides functions for generating unique identifiers.

It is used to generate the per-run correlation id (the "gid") that the game API
expects with every judging call of a normal game.
*/
package randx

import (
	"github.com/google/uuid"
)

// GameID generates a standard UUID v4 string to serve as the correlation id of one normal game run.
func GameID() string {
	return uuid.New().String()
}

// IsValidGameID checks if the given string is a canonical UUID, as produced by GameID.
func IsValidGameID(id string) bool {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return false
	}
	return parsed.String() == id
}
