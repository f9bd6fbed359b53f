package dto

import "github.com/aRTxaRTx/sambapos_entity_editor/internal/core/domain"

// RegisterRequest defines the data needed to register a new user.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID      string   `json:"userID"`
	Username    string   `json:"username"`
	Name        string   `json:"name"`
	Permissions []string `json:"permissions"`
}

// GrantPermissionsRequest replaces the permission set of a user.
type GrantPermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"dive,required"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return UserResponse{
		UserID:      u.UserID,
		Username:    u.Username,
		Name:        u.Name,
		Permissions: perms,
	}
}
