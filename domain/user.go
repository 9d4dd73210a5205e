package domain

import (
	"time"
)

var (
	MessageSuccessLogin   = "login successful"
	MessageSuccessGetUser = "user retrieved successfully"

	MessageFailedLogin   = "failed to login"
	MessageFailedGetUser = "failed to retrieve user"
)

type (
	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required"`
	}

	LoginResponse struct {
		UserID   string `json:"user_id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Token    string `json:"token"`
	}

	UserResponse struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone"`
		CreatedAt time.Time `json:"created_at"`
	}
)
