package dto

// NearbyRequest asks for transport locations ranked by distance from a
// reference point. Latitude/longitude are required together; radius is in
// kilometers and optional; limit defaults to 50.
type NearbyRequest struct {
	Latitude   float64  `json:"latitude" validate:"min=-90,max=90"`
	Longitude  float64  `json:"longitude" validate:"min=-180,max=180"`
	Radius     *float64 `json:"radius,omitempty" validate:"omitempty,gt=0"`
	Limit      int      `json:"limit,omitempty" validate:"omitempty,min=1"`
	CategoryID *int64   `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	Search     string   `json:"search,omitempty"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest is the admin variant of registration: isAdmin may be set.
type CreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,min=1"`
	LastName  string `json:"lastName" validate:"required,min=1"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	IsAdmin   bool   `json:"isAdmin"`
}

// UpdateUserRequest carries a sparse field set; absent fields stay untouched.
// IsAdmin is honored only on the admin route.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,min=1"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
	IsAdmin   *bool   `json:"isAdmin,omitempty"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1"`
}

type CreateVehicleRequest struct {
	Brand *string `json:"brand,omitempty"`
	Model *string `json:"model,omitempty"`
}

type UpdateVehicleRequest struct {
	Brand *string `json:"brand,omitempty"`
	Model *string `json:"model,omitempty"`
}

type CreateTransportLocationRequest struct {
	CategoryID *int64   `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	VehicleID  *int64   `json:"vehicleId,omitempty" validate:"omitempty,min=1"`
	Address    string   `json:"address" validate:"required,min=1"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

type UpdateTransportLocationRequest struct {
	CategoryID *int64   `json:"categoryId,omitempty" validate:"omitempty,min=1"`
	VehicleID  *int64   `json:"vehicleId,omitempty" validate:"omitempty,min=1"`
	Address    *string  `json:"address,omitempty" validate:"omitempty,min=1"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// AddFavoriteRequest marks a location as favorite for the authenticated
// user; the user id always comes from the session, never from the body.
type AddFavoriteRequest struct {
	TransportLocationID int64 `json:"transportLocationId" validate:"required,min=1"`
}

// AdminAddFavoriteRequest is the admin variant with an explicit user.
type AdminAddFavoriteRequest struct {
	UserID              int64 `json:"userId" validate:"required,min=1"`
	TransportLocationID int64 `json:"transportLocationId" validate:"required,min=1"`
}
