package types

import "github.com/TurboProjects/Notes-App-Challenge/pkg/validate"

type User struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type RegisterRequest struct {
	Email     validate.String `json:"email"`
	Password  validate.String `json:"password"`
	FirstName validate.String `json:"first_name"`
	LastName  validate.String `json:"last_name"`
}

type RegisterResponse struct {
	User    *User  `json:"user"`
	Message string `json:"message"`
}

type UpdateUserRequest struct {
	FirstName validate.String `json:"first_name"`
	LastName  validate.String `json:"last_name"`
}

type TokenRequest struct {
	Email    validate.String `json:"email"`
	Password validate.String `json:"password"`
}

type RefreshRequest struct {
	Refresh validate.String `json:"refresh"`
}

type RefreshResponse struct {
	Access string `json:"access"`
}

type LogoutRequest struct {
	Refresh validate.String `json:"refresh"`
}
