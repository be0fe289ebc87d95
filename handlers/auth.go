package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nadeemahmad9/real-estate/logger"
	"github.com/nadeemahmad9/real-estate/models"
	"github.com/nadeemahmad9/real-estate/store"
	"github.com/nadeemahmad9/real-estate/utils"
)

type AuthController struct {
	users store.UserStore
}

func NewAuthController(users store.UserStore) *AuthController {
	return &AuthController{users: users}
}

// Register creates an admin account. Every registration through this
// endpoint is an admin; there is no self-serve user tier.
func (ac *AuthController) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "All fields are required",
		})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.L().Errorw("hash password", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to register admin",
		})
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	user, err = ac.users.Create(c.Request().Context(), user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Email already registered",
			})
		}
		logger.L().Errorw("create user", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to register admin",
		})
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		logger.L().Errorw("generate token", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to generate token",
		})
	}

	return c.JSON(http.StatusCreated, models.RegisterResponse{
		Message: "Admin registered successfully!",
		Token:   token,
		User:    user.Public(),
	})
}

func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Email and password are required",
		})
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	admin, err := ac.users.GetAdminByEmail(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Admin not found",
			})
		}
		logger.L().Errorw("find admin", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to log in",
		})
	}

	if err := utils.CheckPassword(admin.Password, req.Password); err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{
			"message": "Invalid password",
		})
	}

	token, err := utils.GenerateJWT(admin.ID, models.RoleAdmin)
	if err != nil {
		logger.L().Errorw("generate token", "error", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to generate token",
		})
	}

	public := admin.Public()
	public.Role = ""

	return c.JSON(http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		Admin:   public,
	})
}
