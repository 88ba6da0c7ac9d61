package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/MrShtrahman/mongo-M220-project/middleware"
	"github.com/MrShtrahman/mongo-M220-project/models"
	"github.com/MrShtrahman/mongo-M220-project/services"
)

type UserController struct {
	authService *services.AuthService
}

func NewUserController(authService *services.AuthService) *UserController {
	return &UserController{
		authService: authService,
	}
}

// registerMessage translates binding failures on the register payload into
// the messages clients expect.
func registerMessage(err error) string {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request format"
	}
	for _, e := range ve {
		switch e.Field() {
		case "Password":
			return services.ErrPasswordTooShort.Error()
		case "Name":
			return services.ErrNameTooShort.Error()
		case "Email":
			return "please provide a valid email address"
		}
	}
	return "invalid input data"
}

func authResponse(c *gin.Context, result *services.AuthResult) {
	c.JSON(http.StatusOK, gin.H{
		"auth_token": result.Token,
		"info": gin.H{
			"name":        result.User.Name,
			"email":       result.User.Email,
			"preferences": result.User.Preferences,
		},
	})
}

func (ctrl *UserController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": registerMessage(err)})
		return
	}

	result, err := ctrl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	authResponse(c, result)
}

func (ctrl *UserController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad email or password format, expected strings"})
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	authResponse(c, result)
}

func (ctrl *UserController) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	if err := ctrl.authService.Logout(c.Request.Context(), claims); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Delete removes the caller's account after re-verifying the password.
func (ctrl *UserController) Delete(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req models.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad password format, expected string"})
		return
	}

	if err := ctrl.authService.DeleteAccount(c.Request.Context(), claims, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// UpdatePreferences stores new preferences and returns a refreshed token
// carrying them.
func (ctrl *UserController) UpdatePreferences(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	result, err := ctrl.authService.UpdatePreferences(c.Request.Context(), claims, req.Preferences)
	if err != nil {
		respondError(c, err)
		return
	}
	authResponse(c, result)
}

// MakeAdmin registers an elevated user. Only wired up when internal routes
// are enabled.
func (ctrl *UserController) MakeAdmin(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": registerMessage(err)})
		return
	}

	result, err := ctrl.authService.CreateAdminUser(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	authResponse(c, result)
}
