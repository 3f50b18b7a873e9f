package auth

import "fruitstars/internal/domain/models"

// Verifier defines the interface for bearer token verification.
// This abstraction allows for different verification implementations
// while keeping the middleware agnostic to the verification details.
type Verifier interface {
	// VerifyToken validates a token string and returns the parsed claims.
	// Returns an error if the token is invalid, expired, or has an invalid signature.
	VerifyToken(tokenString string) (*models.Claims, error)

	// Close releases any resources held by the verifier (e.g., HTTP connections for JWKS).
	// Should be called when the verifier is no longer needed.
	Close() error
}
