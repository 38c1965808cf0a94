package handler

import "github.com/usermgmt/user-management-api/internal/core/domain"

// --- Request types ---

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72,passwordchars"`
}

// updateUserRequest is a partial patch: every field optional, but the handler
// rejects a request that carries none of them.
type updateUserRequest struct {
	Email    *string `json:"email"    validate:"omitempty,email"`
	Name     *string `json:"name"     validate:"omitempty,min=2,max=50"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72,passwordchars"`
}

func (r updateUserRequest) empty() bool {
	return r.Email == nil && r.Name == nil && r.Password == nil
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type searchRequest struct {
	Term string `query:"name" validate:"required,max=50"`
}

// --- Response payloads carried inside the envelope ---

type loginResponse struct {
	Token string             `json:"token"`
	User  *domain.PublicUser `json:"user"`
}
