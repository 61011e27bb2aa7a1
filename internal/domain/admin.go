package domain

import "time"

type Admin struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	CreatedAt    time.Time
}

// Session is the operator credential threaded through every operator call.
type Session struct {
	ID         string
	AdminEmail string
	ExpiresAt  time.Time
}

func (s *Session) Valid(now time.Time) bool {
	return s != nil && s.ID != "" && now.Before(s.ExpiresAt)
}
