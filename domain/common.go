package domain

import (
	"errors"
	"os"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
	ErrUserNotAllowed = errors.New("user not allowed")
)
