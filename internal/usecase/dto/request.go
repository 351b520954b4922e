package dto

// SavePlaceRequest carries the add/edit place form. The category is a
// free-text name resolved to a canonical row on save. Coordinates are
// optional but must come as a pair.
type SavePlaceRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=120"`
	CategoryName  string   `json:"category_name" validate:"required,min=1,max=80"`
	Address       string   `json:"address" validate:"omitempty,max=200"`
	ContactNumber string   `json:"contact_number" validate:"omitempty,max=20"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

// UpdatePlaceRequest is the edit form. An empty category name keeps the
// current category.
type UpdatePlaceRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=120"`
	CategoryName  string   `json:"category_name" validate:"omitempty,max=80"`
	Address       string   `json:"address" validate:"omitempty,max=200"`
	ContactNumber string   `json:"contact_number" validate:"omitempty,max=20"`
	Latitude      *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=1,max=120"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=1,max=120"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	Address  string `json:"address" validate:"omitempty,max=200"`
}

type SubmitReportRequest struct {
	ReportType  string `json:"report_type" validate:"required,min=1,max=60"`
	Department  string `json:"department" validate:"required,min=1,max=60"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
}
