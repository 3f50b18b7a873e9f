package auth

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
)

func signToken(t *testing.T, claims *models.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestInsecureVerifier(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := NewInsecureVerifier(logger)

	tests := []struct {
		name     string
		claims   *models.Claims
		wantRole models.Role
		wantErr  bool
	}{
		{
			name: "viewer role kept",
			claims: &models.Claims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
				Role: models.RoleViewer,
			},
			wantRole: models.RoleViewer,
		},
		{
			name: "missing role defaults to owner",
			claims: &models.Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-2"},
			},
			wantRole: models.RoleOwner,
		},
		{
			name: "unknown role defaults to owner",
			claims: &models.Claims{
				RegisteredClaims: jwt.RegisteredClaims{Subject: "user-3"},
				Role:             "superadmin",
			},
			wantRole: models.RoleOwner,
		},
		{
			name:    "missing subject rejected",
			claims:  &models.Claims{Role: models.RoleEditor},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := verifier.VerifyToken(signToken(t, tt.claims))
			if tt.wantErr {
				if !errors.Is(err, domain.ErrUnauthorized) {
					t.Fatalf("err = %v, want unauthorized", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("VerifyToken: %v", err)
			}
			if got.Role != tt.wantRole {
				t.Errorf("role = %s, want %s", got.Role, tt.wantRole)
			}
		})
	}
}

func TestInsecureVerifierGarbage(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := NewInsecureVerifier(logger)

	if _, err := verifier.VerifyToken("not-a-jwt"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("err = %v, want unauthorized", err)
	}
}
