package controllers

import (
	"log"
	"net/http"
	"planova/internal/models"
	"planova/internal/repository"
	"planova/internal/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users    repository.UserRepository
	secret   string
	tokenTTL time.Duration
}

func NewAuthController(users repository.UserRepository, secret string, tokenTTL time.Duration) *AuthController {
	return &AuthController{
		users:    users,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a free account with an email and a password of at least 8 characters
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Account credentials"
// @Success 201 {object} map[string]interface{} "Account created"
// @Failure 400 {object} map[string]interface{} "Invalid request data or email already registered"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := ac.users.GetUserByEmail(email)
	if err != nil && !isNotFound(err) {
		respondError(c, http.StatusInternalServerError, "Failed to register user", err.Error())
		return
	}
	if existing != nil {
		respondError(c, http.StatusBadRequest, "Email already registered", "An account with this email already exists")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to register user", err.Error())
		return
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		IsActive: true,
		Role:     models.RoleFree,
	}
	if err := ac.users.CreateUser(&user); err != nil {
		log.Printf("Failed to create user %s: %v", email, err)
		respondError(c, http.StatusInternalServerError, "Failed to register user", err.Error())
		return
	}

	respondSuccess(c, http.StatusCreated, "User registered successfully", user)
}

// Login godoc
// @Summary Log in
// @Description Exchange email and password for a bearer token. Accepts JSON or the OAuth2 password form (username, password).
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} map[string]interface{} "Inactive user"
// @Failure 401 {object} map[string]interface{} "Incorrect email or password"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request data", err.Error())
		return
	}

	user, err := ac.users.GetUserByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil || user == nil || !utils.CheckPassword(user.Password, req.Password) {
		respondError(c, http.StatusUnauthorized, "Incorrect email or password", "Invalid credentials")
		return
	}

	if !user.IsActive {
		respondError(c, http.StatusBadRequest, "Inactive user", "Account is disabled")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email, ac.secret, ac.tokenTTL)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
