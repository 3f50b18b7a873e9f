package auth

import (
	"log/slog"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
)

// InsecureVerifier decodes tokens WITHOUT signature verification. It exists so
// local development works without an identity provider; never run it in
// production.
type InsecureVerifier struct {
	logger *slog.Logger
}

// NewInsecureVerifier creates the development-only verifier.
func NewInsecureVerifier(logger *slog.Logger) Verifier {
	logger.Warn("using insecure token verifier, tokens are NOT signature-checked")
	return &InsecureVerifier{logger: logger}
}

// VerifyToken decodes the claims without checking the signature. A missing or
// invalid role claim defaults to owner so a bare dev token can exercise every
// endpoint.
func (v *InsecureVerifier) VerifyToken(tokenString string) (*models.Claims, error) {
	claims := &models.Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		v.logger.Debug("token decode failed", "error", err.Error())
		return nil, domain.ErrUnauthorized
	}

	if claims.Subject == "" {
		return nil, domain.ErrUnauthorized
	}
	if !models.ValidRole(claims.Role) {
		claims.Role = models.RoleOwner
	}

	return claims, nil
}

// Close is a no-op.
func (v *InsecureVerifier) Close() error {
	return nil
}
