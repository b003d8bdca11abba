package dto

// LoginRequest credentials for POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest body for POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=owner supervisor"`
}

// UpdateProfileRequest body for PUT /api/auth/profile.
type UpdateProfileRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is returned by login, register and profile updates.
type AuthResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Token     string `json:"token"`
}

// UserResponse is a user without credentials, for the owner's user listing.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}
