package usecase

import (
	"context"
	"errors"
	"time"

	"darum/internal/domain"
)

type Login struct {
	Auth   AuthenticationManager
	Tokens TokenIssuer
	Audit  *AuditEmitter
}

type AuthResult struct {
	Token        string
	RefreshToken string
	ExpiresAt    time.Time
	Principal    domain.Principal
}

func (uc *Login) Execute(ctx context.Context, email, password, remoteAddr string) (*AuthResult, error) {
	principal, err := uc.Auth.Authenticate(ctx, email, password)
	if err != nil {
		uc.auditFailure(ctx, email, remoteAddr, err)
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
		_ = uc.Audit.EmitLoginSucceeded(ctx, principal.Subject, remoteAddr)
	}
	return &AuthResult{
		Token:        accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    uc.Tokens.Expiry(),
		Principal:    principal,
	}, nil
}

func (uc *Login) auditFailure(ctx context.Context, email, remoteAddr string, cause error) {
	if uc.Audit == nil {
		return
	}
	code := "authentication_failed"
	if errors.Is(cause, domain.ErrBadCredentials) {
		code = "bad_credentials"
	}
	_ = uc.Audit.EmitLoginFailed(ctx, email, remoteAddr, code)
}
