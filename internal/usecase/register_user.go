package usecase

import (
	"context"

	"darum/internal/domain"

	"github.com/google/uuid"
)

// RegisterUser creates a directory account with the lowest-privilege role
// and authenticates the new account. The token returned belongs to the
// account that was just created, not to the caller.
type RegisterUser struct {
	Users  UserRepository
	Hasher PasswordHasher
	Auth   AuthenticationManager
	Tokens TokenIssuer
	Audit  *AuditEmitter
}

func (uc *RegisterUser) Execute(ctx context.Context, email, password, name, remoteAddr string) (*AuthResult, error) {
	hash, err := uc.Hasher.Hash(password)
	if err != nil {
		return nil, domain.ErrInternalAuth
	}
	user := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		Enabled:      true,
	}
	if _, err := uc.Users.Create(ctx, user); err != nil {
		return nil, err
	}

	principal, err := uc.Auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	accessToken, err := uc.Tokens.Issue(principal)
	if err != nil {
		return nil, domain.ErrInternalAuth
	}
	refreshToken, err := uc.Tokens.IssueRefresh(principal)
	if err != nil {
		return nil, domain.ErrInternalAuth
	}

	if uc.Audit != nil {
		_ = uc.Audit.EmitUserRegistered(ctx, principal.Subject, remoteAddr)
	}
	return &AuthResult{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    uc.Tokens.Expiry(),
		Principal:    principal,
	}, nil
}

// Provision creates a directory account for an employee record without
// returning a token. The account gets a random throwaway password and must
// go through a reset before first login.
func (uc *RegisterUser) Provision(ctx context.Context, email, name string) error {
	hash, err := uc.Hasher.Hash(uuid.NewString())
	if err != nil {
		return domain.ErrInternalAuth
	}
	_, err = uc.Users.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		Enabled:      true,
	})
	return err
}
