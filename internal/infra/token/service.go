package token

import (
	"encoding/base64"
	"errors"
	"time"

	"darum/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

const minKeyBytes = 32

// Claims is the token payload: subject, authority snapshot and the
// second-resolution iat/nbf/exp registered claims.
type Claims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles"`
}

// Service issues and verifies HMAC-SHA256 signed bearer tokens. The signing
// algorithm is pinned; tokens advertising any other algorithm are rejected
// during parsing.
type Service struct {
	key        []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(secretBase64 string, accessTTL, refreshTTL time.Duration, opts ...Option) (*Service, error) {
	key, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, errors.New("secret key must be base64")
	}
	if len(key) < minKeyBytes {
		return nil, errors.New("secret key must decode to at least 256 bits")
	}
	svc := &Service{
		key:        key,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *Service) Issue(principal domain.Principal) (string, error) {
	return s.build(principal, s.accessTTL)
}

func (s *Service) IssueRefresh(principal domain.Principal) (string, error) {
	return s.build(principal, s.refreshTTL)
}

func (s *Service) build(principal domain.Principal, ttl time.Duration) (string, error) {
	now := s.now().UTC().Truncate(time.Second)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Roles: principal.Authorities,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
}

func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignature
		default:
			return nil, domain.ErrTokenMalformed
		}
	}
	return claims, nil
}

func (s *Service) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// IsValidFor reports whether the token verifies, is unexpired and was issued
// for the given principal's subject. A well-signed token for a different
// subject is not valid.
func (s *Service) IsValidFor(tokenString string, principal domain.Principal) bool {
	subject, err := s.ExtractSubject(tokenString)
	if err != nil {
		return false
	}
	return subject != "" && subject == principal.Subject
}

// Expiry returns the expiry an access token issued now would carry.
func (s *Service) Expiry() time.Time {
	return s.now().UTC().Truncate(time.Second).Add(s.accessTTL)
}
