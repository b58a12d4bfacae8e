package core

import "github.com/google/uuid"

// NewSessionID returns a unique identifier for one engine run. It is
// attached to startup logs so overlapping log streams can be told apart.
func NewSessionID() string {
	return uuid.NewString()
}
