package user

import (
	"context"
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"
	"github.com/vini-501/FoodBase/pkg/jwt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

// Login is a passwordless upsert keyed on email: a returning customer gets
// their username and phone refreshed, a new one gets a fresh account. Either
// way the session token carries the stable user id.
func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, err
		}
		user = &entities.User{
			ID:       uuid.NewString(),
			Username: req.Username,
			Email:    req.Email,
			Phone:    req.Phone,
		}
		if err := s.userRepository.CreateUser(ctx, user); err != nil {
			return domain.LoginResponse{}, err
		}
	} else {
		user.Username = req.Username
		user.Phone = req.Phone
		if err := s.userRepository.UpdateUser(ctx, user); err != nil {
			return domain.LoginResponse{}, err
		}
	}

	token := s.jwtService.GenerateTokenUser(user.ID, domain.RoleUser)

	return domain.LoginResponse{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrUserNotFound
		}
		return domain.UserResponse{}, err
	}

	return domain.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
	}, nil
}
