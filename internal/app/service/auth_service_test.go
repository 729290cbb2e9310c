package service

import (
	"testing"

	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	t.Helper()
	return NewAuthService(storage.NewMemStorage())
}

func TestAuthService_Register_Success(t *testing.T) {
	svc := setupAuthServiceTest(t)

	user, err := svc.Register(RegisterInput{
		Username:  "jane",
		Password:  "secret",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Roe",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), user.ID, "two users are pre-seeded")
	assert.False(t, user.IsAdmin, "self-registration never yields an admin")
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	svc := setupAuthServiceTest(t)

	_, err := svc.Register(RegisterInput{Username: "admin", Email: "new@example.com"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	svc := setupAuthServiceTest(t)

	_, err := svc.Register(RegisterInput{Username: "fresh", Email: "john@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Login(t *testing.T) {
	svc := setupAuthServiceTest(t)

	user, err := svc.Login("john_doe", "password123")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", user.Email)

	_, err = svc.Login("john_doe", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_ListUsers(t *testing.T) {
	svc := setupAuthServiceTest(t)

	users := svc.ListUsers()
	require.Len(t, users, 2)
	assert.Equal(t, "admin", users[0].Username)
	assert.Equal(t, "john_doe", users[1].Username)
}
