package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukydev/transit-fleet/internal/models"
)

func TestNewService(t *testing.T) {
	service, err := NewService()
	assert.NoError(t, err)
	assert.NotNil(t, service)
	assert.NotEmpty(t, service.jwtSecret)
	assert.Equal(t, 24*time.Hour, service.tokenExp)
}

func TestService_GenerateServiceToken(t *testing.T) {
	service, _ := NewService()

	token, err := service.GenerateServiceToken("simulator", models.RoleOperator)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = service.GenerateServiceToken("simulator", models.Role("superuser"))
	assert.Error(t, err)
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := NewService()

	token, _ := service.GenerateServiceToken("simulator", models.RoleOperator)

	// Test valid token
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "svc-simulator", claims.UserID)
	assert.Equal(t, "simulator", claims.Username)
	assert.Equal(t, models.RoleOperator, claims.Role)

	// Bearer prefix is tolerated
	claims, err = service.ValidateToken("Bearer " + token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)

	// Test invalid token
	_, err = service.ValidateToken("invalid-token")
	assert.Error(t, err)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestService_ExtractTokenFromHeader(t *testing.T) {
	service, _ := NewService()

	token, err := service.ExtractTokenFromHeader("Bearer abc123")
	assert.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = service.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = service.ExtractTokenFromHeader("Basic abc123")
	assert.Error(t, err)

	_, err = service.ExtractTokenFromHeader("Bearer")
	assert.Error(t, err)
}
