package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/safedumaguide/api/internal/domain"
)

func TestComputeVisibility(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	adminID := uuid.New()

	publicPlace := &domain.Place{Name: "Public"}
	ownedPlace := &domain.Place{Name: "Owned", CreatedBy: &ownerID}

	anonymous := domain.Viewer{Role: domain.RoleUser}
	owner := domain.Viewer{UserID: &ownerID, Role: domain.RoleUser}
	stranger := domain.Viewer{UserID: &strangerID, Role: domain.RoleUser}
	admin := domain.Viewer{UserID: &adminID, Role: domain.RoleAdmin}

	tests := []struct {
		name     string
		place    *domain.Place
		viewer   domain.Viewer
		visible  bool
		editable bool
	}{
		{"anonymous sees public, cannot edit", publicPlace, anonymous, true, false},
		{"anonymous cannot see owned", ownedPlace, anonymous, false, false},
		{"owner sees and edits own", ownedPlace, owner, true, true},
		{"owner cannot edit public", publicPlace, owner, true, false},
		{"stranger cannot see another user's place", ownedPlace, stranger, false, false},
		{"admin sees and edits public", publicPlace, admin, true, true},
		{"admin sees and edits owned", ownedPlace, admin, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vis := domain.ComputeVisibility(tt.place, tt.viewer)
			assert.Equal(t, tt.visible, vis.Visible, "visible")
			assert.Equal(t, tt.editable, vis.Editable, "editable")
		})
	}
}

// An editable place is always visible, whatever the combination of
// viewer and creator.
func TestComputeVisibility_EditableImpliesVisible(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	places := []*domain.Place{
		{Name: "public"},
		{Name: "owned", CreatedBy: &ownerID},
	}
	viewers := []domain.Viewer{
		{Role: domain.RoleUser},
		{UserID: &ownerID, Role: domain.RoleUser},
		{UserID: &otherID, Role: domain.RoleUser},
		{UserID: &otherID, Role: domain.RoleAdmin},
	}

	for _, p := range places {
		for _, v := range viewers {
			vis := domain.ComputeVisibility(p, v)
			if vis.Editable {
				assert.True(t, vis.Visible, "place %s", p.Name)
			}
		}
	}
}
