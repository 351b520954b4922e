package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Latitude must be in [-90,90] and longitude in [-180,180]",
		http.StatusBadRequest,
	)

	ErrIncompleteCoordinates = New(
		"INCOMPLETE_COORDINATES",
		"Latitude and longitude must be provided together",
		http.StatusBadRequest,
	)

	ErrEmptyCategoryName = New(
		"EMPTY_CATEGORY_NAME",
		"Category name must not be empty",
		http.StatusBadRequest,
	)

	ErrCategoryReadFailed = New(
		"CATEGORY_READ_FAILED",
		"Could not read the category list",
		http.StatusInternalServerError,
	)

	ErrCategoryWriteFailed = New(
		"CATEGORY_WRITE_FAILED",
		"Could not save the category",
		http.StatusInternalServerError,
	)

	ErrPlaceNotFound = New(
		"PLACE_NOT_FOUND",
		"Place not found",
		http.StatusNotFound,
	)

	ErrPlaceWriteFailed = New(
		"PLACE_WRITE_FAILED",
		"Could not save the place",
		http.StatusInternalServerError,
	)

	ErrNotAllowed = New(
		"NOT_ALLOWED",
		"You do not have permission to modify this place",
		http.StatusForbidden,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"An account with this email already exists",
		http.StatusConflict,
	)

	ErrProfileNotFound = New(
		"PROFILE_NOT_FOUND",
		"Profile not found",
		http.StatusNotFound,
	)

	ErrReportWriteFailed = New(
		"REPORT_WRITE_FAILED",
		"Could not submit the report",
		http.StatusInternalServerError,
	)

	ErrAvatarUploadFailed = New(
		"AVATAR_UPLOAD_FAILED",
		"Could not upload the avatar",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
