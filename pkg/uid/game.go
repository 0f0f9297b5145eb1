package uid

import "github.com/google/uuid"

// GenerateGameID returns a random identifier for one game session.
func GenerateGameID() string {
	return uuid.NewString()
}
