package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Enabled      bool
	Locked       bool
	CreatedAt    time.Time
}

// Principal is the identity bound to an authenticated request. Authorities
// are derived from the user's role at construction time.
type Principal struct {
	Subject     string
	Authorities []string
	Enabled     bool
	Locked      bool
	User        User
}

func NewPrincipal(user User) Principal {
	return Principal{
		Subject:     user.Email,
		Authorities: user.Role.Authorities(),
		Enabled:     user.Enabled,
		Locked:      user.Locked,
		User:        user,
	}
}

func (p Principal) HasAuthority(authority string) bool {
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

func (p Principal) HasAnyAuthority(authorities ...string) bool {
	for _, a := range authorities {
		if p.HasAuthority(a) {
			return true
		}
	}
	return false
}
