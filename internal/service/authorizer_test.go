package service

import (
	"errors"
	"testing"

	"fruitstars/internal/domain"
	"fruitstars/internal/domain/models"
)

func TestRoleAuthorizer(t *testing.T) {
	authorizer := NewRoleAuthorizer()

	tests := []struct {
		name       string
		role       models.Role
		wantRead   bool
		wantMutate bool
	}{
		{name: "owner", role: models.RoleOwner, wantRead: true, wantMutate: true},
		{name: "editor", role: models.RoleEditor, wantRead: true, wantMutate: true},
		{name: "viewer", role: models.RoleViewer, wantRead: true, wantMutate: false},
		{name: "unknown", role: "admin", wantRead: false, wantMutate: false},
		{name: "empty", role: "", wantRead: false, wantMutate: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			readErr := authorizer.RequireReader(tt.role)
			if (readErr == nil) != tt.wantRead {
				t.Errorf("RequireReader = %v, want allowed=%v", readErr, tt.wantRead)
			}
			mutateErr := authorizer.RequireEditor(tt.role)
			if (mutateErr == nil) != tt.wantMutate {
				t.Errorf("RequireEditor = %v, want allowed=%v", mutateErr, tt.wantMutate)
			}
			if mutateErr != nil && !errors.Is(mutateErr, domain.ErrForbidden) {
				t.Errorf("mutate err = %v, want forbidden", mutateErr)
			}
		})
	}
}
