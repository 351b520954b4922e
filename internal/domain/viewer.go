package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Viewer is the per-request identity used to compute visibility and edit
// rights. UserID is nil for unauthenticated viewers.
type Viewer struct {
	UserID *uuid.UUID
	Role   Role
}

func (v Viewer) Authenticated() bool {
	return v.UserID != nil
}

func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}

// Visibility is the result of the ownership policy for one place.
type Visibility struct {
	Visible  bool `json:"visible"`
	Editable bool `json:"editable"`
}

// ComputeVisibility is the single authorization policy for places.
// Ordinary users see the shared public directory plus their own entries;
// administrators see and edit everything. Both list loading and mutation
// paths go through this function.
func ComputeVisibility(place *Place, viewer Viewer) Visibility {
	owned := viewer.Authenticated() &&
		place.CreatedBy != nil &&
		*place.CreatedBy == *viewer.UserID

	return Visibility{
		Visible:  viewer.IsAdmin() || place.CreatedBy == nil || owned,
		Editable: viewer.IsAdmin() || owned,
	}
}
