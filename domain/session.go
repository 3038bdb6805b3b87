package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessStartSession = "session started successfully"
	MessageSuccessEndSession   = "session ended successfully"

	MessageFailedStartSession = "failed to start session"
	MessageFailedEndSession   = "failed to end session"

	ErrSessionNotFound = errors.New("session not found")
)

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
