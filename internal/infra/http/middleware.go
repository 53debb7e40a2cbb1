package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"darum/internal/domain"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "

	principalKey = "auth.principal"
)

// tokenVerifier is the slice of the token service the filter needs.
type tokenVerifier interface {
	ExtractSubject(tokenString string) (string, error)
	IsValidFor(tokenString string, principal domain.Principal) bool
}

type userDirectory interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}

type tokenAuditor interface {
	EmitTokenRejected(ctx context.Context, subject, remoteAddr, errorCode string) error
}

// authenticationFilter inspects the Authorization header on every request.
// Requests without a bearer token pass through unauthenticated; requests that
// present one either bind a principal to the context or are rejected with a
// 401 before any handler runs.
func authenticationFilter(tokens tokenVerifier, users userDirectory, audit tokenAuditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}
		if _, ok := currentPrincipal(c); ok {
			c.Next()
			return
		}

		tokenString := header[len(bearerPrefix):]
		subject, err := tokens.ExtractSubject(tokenString)
		if err != nil {
			rejectToken(c, audit, "", err)
			return
		}
		// A verified token with an empty subject authenticates nobody.
		if subject == "" {
			c.Next()
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), subject)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				err = domain.ErrUnknownSubject
			}
			rejectToken(c, audit, subject, err)
			return
		}

		principal := domain.NewPrincipal(user)
		if !tokens.IsValidFor(tokenString, principal) {
			rejectToken(c, audit, subject, domain.ErrTokenExpired)
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

func rejectToken(c *gin.Context, audit tokenAuditor, subject string, cause error) {
	if audit != nil {
		_ = audit.EmitTokenRejected(c.Request.Context(), subject, c.ClientIP(), errorCode(cause))
	}
	writeFailure(c, http.StatusUnauthorized, statusError, "Invalid or expired token")
	c.Abort()
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, domain.ErrTokenSignature):
		return "token_signature_invalid"
	case errors.Is(err, domain.ErrUnknownSubject):
		return "unknown_subject"
	default:
		return "token_malformed"
	}
}

func currentPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}

// requireAnyAuthority gates a route behind the listed authorities. Anonymous
// requests get a 401; authenticated requests lacking every listed authority
// get a 403.
func requireAnyAuthority(authorities ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := currentPrincipal(c)
		if !ok {
			writeTranslated(c, domain.ErrUnknownSubject)
			c.Abort()
			return
		}
		if !principal.HasAnyAuthority(authorities...) {
			writeTranslated(c, domain.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
