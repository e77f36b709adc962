package auth

import (
	"testing"

	"cookenu/internal/server/models"
)

func TestCanReadCollection(t *testing.T) {
	t.Parallel()

	if !CanReadCollection(Identity{UserID: "u1", Role: models.RoleNormal}) {
		t.Fatal("any verified identity may read collections")
	}
	if !CanReadCollection(Identity{UserID: "u2", Role: models.RoleAdmin}) {
		t.Fatal("admins may read collections")
	}
	if CanReadCollection(Identity{}) {
		t.Fatal("absent identity may not read collections")
	}
}

func TestCanMutateOwned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      Identity
		ownerID string
		allowed bool
	}{
		{"owner may mutate", Identity{UserID: "u1", Role: models.RoleNormal}, "u1", true},
		{"non-owner may not", Identity{UserID: "u1", Role: models.RoleNormal}, "u2", false},
		{"admin may mutate anything", Identity{UserID: "adm", Role: models.RoleAdmin}, "u2", true},
		{"admin may mutate own", Identity{UserID: "adm", Role: models.RoleAdmin}, "adm", true},
		{"unknown role is least privilege", Identity{UserID: "u1", Role: models.ParseRole("SUPER")}, "u2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanMutateOwned(tt.id, tt.ownerID)
			if d.Allowed != tt.allowed {
				t.Fatalf("Allowed = %v, want %v", d.Allowed, tt.allowed)
			}
			if !d.Allowed && d.Reason != "Normal users can only modify their own recipes" {
				t.Fatalf("unexpected reason %q", d.Reason)
			}
		})
	}
}

func TestCanDeleteUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         Identity
		targetID   string
		allowed    bool
		wantReason string
	}{
		{
			name:       "normal user refused",
			id:         Identity{UserID: "u1", Role: models.RoleNormal},
			targetID:   "u2",
			wantReason: "Forbidden access for normal users",
		},
		{
			name:       "admin self-delete refused",
			id:         Identity{UserID: "adm", Role: models.RoleAdmin},
			targetID:   "adm",
			wantReason: "You can't delete your own account",
		},
		{
			name:     "admin deletes other",
			id:       Identity{UserID: "adm", Role: models.RoleAdmin},
			targetID: "u2",
			allowed:  true,
		},
		{
			name:       "unknown role is least privilege",
			id:         Identity{UserID: "u1", Role: models.ParseRole("ROOT")},
			targetID:   "u2",
			wantReason: "Forbidden access for normal users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanDeleteUser(tt.id, tt.targetID)
			if d.Allowed != tt.allowed {
				t.Fatalf("Allowed = %v, want %v", d.Allowed, tt.allowed)
			}
			if !tt.allowed && d.Reason != tt.wantReason {
				t.Fatalf("Reason = %q, want %q", d.Reason, tt.wantReason)
			}
		})
	}
}
