package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/marierupasinghe/FreshEats/errors"
	"github.com/marierupasinghe/FreshEats/middleware"
	"github.com/marierupasinghe/FreshEats/models"
	"github.com/marierupasinghe/FreshEats/repository"
	"github.com/marierupasinghe/FreshEats/services"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	users  repository.UserRepo
	tokens *services.TokenService
}

func NewAuthController(users repository.UserRepo, tokens *services.TokenService) *AuthController {
	return &AuthController{
		users:  users,
		tokens: tokens,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Register creates a new account.
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.ErrBadRequest)
		return
	}

	ctx := c.Request.Context()

	// Only a definitive "no such user" clears the way; a store failure must
	// not read as a free email.
	_, err := ac.users.FindByEmail(ctx, req.Email)
	if err == nil {
		c.Error(apperrors.ErrConflict)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zap.L().Error("Failed to check email availability", zap.Error(err))
		c.Error(err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.Error(err)
		return
	}

	newUser := &models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := ac.users.Create(ctx, newUser); err != nil {
		zap.L().Error("Failed to create user", zap.Error(err))
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
		},
	})
}

// Login authenticates a user and sets the session token cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.ErrBadRequest)
		return
	}

	user, err := ac.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(apperrors.ErrInvalidCredentials)
			return
		}
		zap.L().Error("Failed to look up user", zap.Error(err))
		c.Error(err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.Error(apperrors.ErrInvalidCredentials)
		return
	}

	token, err := ac.tokens.Generate(user.ID.String(), user.Email)
	if err != nil {
		c.Error(err)
		return
	}

	c.SetCookie("token", token, 86400, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged in",
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

// Logout clears the session token cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		c.Error(apperrors.ErrUnauthorized)
		return
	}

	user, err := ac.users.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Error(apperrors.ErrNotFound)
			return
		}
		zap.L().Error("Failed to load user", zap.String("user_id", userID), zap.Error(err))
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, user)
}
