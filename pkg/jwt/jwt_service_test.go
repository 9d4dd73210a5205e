package jwt

import (
	"testing"

	"github.com/vini-501/FoodBase/domain"

	"github.com/stretchr/testify/assert"
)

func TestJWTService_TokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-1", domain.RoleUser)
	assert.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestJWTService_GetUserIDByToken_Invalid(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
