package service

import (
	"errors"

	"github.com/shopflow/shopflow-backend/internal/app/model"
	"github.com/shopflow/shopflow-backend/internal/storage"
	"github.com/shopflow/shopflow-backend/pkg/logger"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type AuthService interface {
	Register(in RegisterInput) (model.User, error)
	Login(username, password string) (model.User, error)
	ListUsers() []model.User
}

type authService struct {
	store storage.Storage
}

func NewAuthService(store storage.Storage) AuthService {
	return &authService{store: store}
}

func (s *authService) Register(in RegisterInput) (model.User, error) {
	logger.Info("Registering user", map[string]interface{}{
		"username": in.Username,
		"email":    in.Email,
	})

	if _, exists := s.store.GetUserByUsername(in.Username); exists {
		logger.Warn("Registration rejected: username taken", map[string]interface{}{
			"username": in.Username,
		})
		return model.User{}, ErrUsernameTaken
	}
	if _, exists := s.store.GetUserByEmail(in.Email); exists {
		logger.Warn("Registration rejected: email taken", map[string]interface{}{
			"email": in.Email,
		})
		return model.User{}, ErrEmailTaken
	}

	// The storage engine forces IsAdmin to false on every create;
	// admin accounts exist only in the seed dataset.
	user := s.store.CreateUser(model.NewUser{
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})

	logger.Info("User registered", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *authService) Login(username, password string) (model.User, error) {
	logger.Debug("Login attempt", map[string]interface{}{
		"username": username,
	})

	// Plain-text comparison: passwords are stored unhashed, an inherited
	// contract of the demo dataset.
	user, ok := s.store.GetUserByUsername(username)
	if !ok || user.Password != password {
		logger.Warn("Login failed", map[string]interface{}{
			"username": username,
		})
		return model.User{}, ErrInvalidCredentials
	}

	logger.Info("User logged in", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return user, nil
}

func (s *authService) ListUsers() []model.User {
	return s.store.GetAllUsers()
}
