package controller

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopflow/shopflow-backend/internal/app/service"
	"github.com/shopflow/shopflow-backend/internal/errors"
	"github.com/shopflow/shopflow-backend/internal/middleware"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,min=3,max=50"`
	Password  string `json:"password" binding:"required,min=6"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new customer account.
// POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid registration request", map[string]interface{}{
			"error": err.Error(),
		})
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	user, err := ctrl.authService.Register(service.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if stderrors.Is(err, service.ErrUsernameTaken) {
			errors.Conflict(c, errors.AuthUsernameExists, "Username already exists")
			return
		}
		if stderrors.Is(err, service.ErrEmailTaken) {
			errors.Conflict(c, errors.AuthEmailExists, "Email already registered")
			return
		}
		log.Error("Registration failed", err, map[string]interface{}{
			"username": req.Username,
		})
		errors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login verifies credentials and returns the matching user.
// POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.BadRequest(c, errors.ValidationInvalidInput, "Invalid request data")
		return
	}

	user, err := ctrl.authService.Login(req.Username, req.Password)
	if err != nil {
		log.Warn("Login rejected", map[string]interface{}{
			"username": req.Username,
		})
		errors.Unauthorized(c, "Invalid username or password")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns every registered user for the admin console. Passwords
// never serialize.
// GET /api/users
func (ctrl *AuthController) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.authService.ListUsers())
}
