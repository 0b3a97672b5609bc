package errors

import "net/http"

// Not-found sentinels. By-id lookups return these instead of sql.ErrNoRows.
var (
	ErrUserNotFound = New(
		"USER_NOT_FOUND",
		"User not found",
		http.StatusNotFound,
	)

	ErrCategoryNotFound = New(
		"CATEGORY_NOT_FOUND",
		"Category not found",
		http.StatusNotFound,
	)

	ErrVehicleNotFound = New(
		"VEHICLE_NOT_FOUND",
		"Vehicle not found",
		http.StatusNotFound,
	)

	ErrLocationNotFound = New(
		"TRANSPORT_LOCATION_NOT_FOUND",
		"Transport location not found",
		http.StatusNotFound,
	)

	ErrFavoriteNotFound = New(
		"FAVORITE_NOT_FOUND",
		"Favorite not found",
		http.StatusNotFound,
	)
)

// Validation and conflict sentinels.
var (
	ErrNoFieldGiven = New(
		"NO_FIELD_GIVEN",
		"No field given for update",
		http.StatusBadRequest,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"Email is already in use",
		http.StatusConflict,
	)

	ErrFavoriteExists = New(
		"FAVORITE_EXISTS",
		"Favorite already exists for this user and location",
		http.StatusConflict,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		"INVALID_ID",
		"Invalid identifier",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)
)

// Authentication and authorization sentinels.
var (
	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrMissingToken = New(
		"MISSING_TOKEN",
		"Authorization token is missing",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = New(
		"INVALID_TOKEN",
		"Authorization token is invalid or expired",
		http.StatusUnauthorized,
	)

	ErrAdminRequired = New(
		"ADMIN_REQUIRED",
		"The action must be performed by an admin",
		http.StatusForbidden,
	)
)

// Storage sentinels.
var (
	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrTokenStoreError = New(
		"TOKEN_STORE_ERROR",
		"Token store operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
