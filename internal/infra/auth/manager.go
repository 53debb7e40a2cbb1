package auth

import (
	"context"
	"errors"

	"darum/internal/domain"
)

type userDirectory interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type passwordHasher interface {
	Compare(hash, password string) error
}

// Manager checks submitted credentials against the user directory. An
// unknown subject reports bad credentials, not a lookup miss, so login
// responses do not reveal which emails exist.
type Manager struct {
	Users  userDirectory
	Hasher passwordHasher
}

func NewManager(users userDirectory, hasher passwordHasher) *Manager {
	return &Manager{Users: users, Hasher: hasher}
}

func (m *Manager) Authenticate(ctx context.Context, email, password string) (domain.Principal, error) {
	user, err := m.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Principal{}, domain.ErrBadCredentials
		}
		return domain.Principal{}, domain.ErrInternalAuth
	}
	if !user.Enabled {
		return domain.Principal{}, domain.ErrAccountDisabled
	}
	if user.Locked {
		return domain.Principal{}, domain.ErrAccountLocked
	}
	if err := m.Hasher.Compare(user.PasswordHash, password); err != nil {
		return domain.Principal{}, domain.ErrBadCredentials
	}
	return domain.NewPrincipal(user), nil
}
