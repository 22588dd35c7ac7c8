package models

import "time"

// Session is the server-side half of a login; the JWT only carries its id.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) Actor() Actor {
	return Actor{UserID: s.UserID, UserRole: s.Role}
}

func (s *Session) HasRole(roles ...string) bool {
	for _, role := range roles {
		if s.Role == role {
			return true
		}
	}
	return false
}
