package domain

import "time"

type ID string

type User struct {
	ID           ID
	Username     string
	Email        string
	PasswordHash string
	Description  string
	Picture      string
	Link         string
	Tokens       []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) HasToken(token string) bool {
	for _, t := range u.Tokens {
		if t == token {
			return true
		}
	}
	return false
}

func (u *User) AppendToken(token string) {
	u.Tokens = append(u.Tokens, token)
}

// RemoveToken drops the exact token from the list, preserving the order
// of the rest. Removing an absent token is a no-op.
func (u *User) RemoveToken(token string) bool {
	for i, t := range u.Tokens {
		if t == token {
			u.Tokens = append(u.Tokens[:i], u.Tokens[i+1:]...)
			return true
		}
	}
	return false
}

func (u *User) ClearTokens() {
	u.Tokens = nil
}
