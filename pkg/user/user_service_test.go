package user

import (
	"context"
	"errors"
	"testing"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenUser(userId string, role string) string {
	args := m.Called(userId, role)
	return args.String(0)
}

func (m *MockJWTService) ValidateTokenUser(token string) (*gojwt.Token, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gojwt.Token), args.Error(1)
}

func (m *MockJWTService) GetUserIDByToken(token string) (string, string, error) {
	args := m.Called(token)
	return args.String(0), args.String(1), args.Error(2)
}

func TestUserService_Login(t *testing.T) {
	request := domain.LoginRequest{
		Username: "asha",
		Email:    "asha@example.com",
		Phone:    "+91 98450 00000",
	}

	t.Run("new customer gets an account", func(t *testing.T) {
		repo := new(MockUserRepository)
		jwtSvc := new(MockJWTService)
		repo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(nil, gorm.ErrRecordNotFound)
		repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.ID != "" && u.Email == "asha@example.com" && u.Username == "asha"
		})).Return(nil)
		jwtSvc.On("GenerateTokenUser", mock.Anything, domain.RoleUser).Return("token-123")

		service := NewUserService(repo, jwtSvc)
		res, err := service.Login(context.Background(), request)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.UserID)
		assert.Equal(t, "token-123", res.Token)
		repo.AssertExpectations(t)
	})

	t.Run("returning customer keeps their id", func(t *testing.T) {
		repo := new(MockUserRepository)
		jwtSvc := new(MockJWTService)
		existing := &entities.User{ID: "user-1", Username: "old-name", Email: "asha@example.com", Phone: "old"}
		repo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(existing, nil)
		repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
			return u.ID == "user-1" && u.Username == "asha" && u.Phone == "+91 98450 00000"
		})).Return(nil)
		jwtSvc.On("GenerateTokenUser", "user-1", domain.RoleUser).Return("token-456")

		service := NewUserService(repo, jwtSvc)
		res, err := service.Login(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "user-1", res.UserID)
		assert.Equal(t, "token-456", res.Token)
		repo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("database failure surfaces", func(t *testing.T) {
		repo := new(MockUserRepository)
		jwtSvc := new(MockJWTService)
		repo.On("GetUserByEmail", mock.Anything, "asha@example.com").Return(nil, errors.New("connection refused"))

		service := NewUserService(repo, jwtSvc)
		_, err := service.Login(context.Background(), request)

		assert.Error(t, err)
	})
}

func TestUserService_Me(t *testing.T) {
	t.Run("known user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByID", mock.Anything, "user-1").Return(&entities.User{
			ID:       "user-1",
			Username: "asha",
			Email:    "asha@example.com",
		}, nil)

		service := NewUserService(repo, new(MockJWTService))
		res, err := service.Me(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "asha", res.Username)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("GetUserByID", mock.Anything, "user-404").Return(nil, gorm.ErrRecordNotFound)

		service := NewUserService(repo, new(MockJWTService))
		_, err := service.Me(context.Background(), "user-404")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
