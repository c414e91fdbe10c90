package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"jobtracker/internal/config"
	"jobtracker/pkg/serrors"
)

// CtxKey is the type of the context keys this package stores values under.
type CtxKey string

// SubjectKey is the context key holding the authenticated token subject.
const SubjectKey CtxKey = "subject"

// SecHandlerOptions configure bearer token validation.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified
	// against. When empty, authentication is disabled and every request
	// passes through.
	PublicKey string
}

// NewSecHandlerOptions constructs a SecHandlerOptions value from the provided
// application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler validates bearer tokens on incoming requests.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

// NewSecHandler parses the configured public key. A nil key (empty config)
// yields a handler that lets everything through.
func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	if options.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Middleware wraps next with bearer token validation. The token subject is
// stored in the request context under SubjectKey.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	if s.publicKey == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if raw == "" || raw == r.Header.Get("Authorization") {
			writeError(ctx, w, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.Authenticate(ctx, raw)
		if err != nil {
			writeError(ctx, w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Authenticate verifies one bearer token and returns a context carrying its
// subject.
func (s *SecHandler) Authenticate(ctx context.Context, raw string) (context.Context, error) {
	if s.publicKey == nil {
		return ctx, nil
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	return context.WithValue(ctx, SubjectKey, claims.Subject), nil
}
