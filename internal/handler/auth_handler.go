package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"celula-igreja/internal/config"
	"celula-igreja/internal/domain"
	"celula-igreja/internal/middleware"
	"celula-igreja/internal/service/access"
	"celula-igreja/internal/service/auth"
)

type AuthHandler struct {
	authService auth.Service
	cfg         *config.Config
}

func NewAuthHandler(authService auth.Service, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input domain.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	ctx, cancel := lookupContext(c, h.cfg.LookupTimeout)
	defer cancel()

	user, err := h.authService.Register(ctx, input)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return middleware.Conflict("Email already registered")
		}
		if errors.Is(err, auth.ErrGroupNotFound) {
			return middleware.BadRequest("Group not found")
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"message": "Registration received. A group leader will review your request.",
	})
}

// Login authenticates the credential, then evaluates access. A denial is a
// policy outcome: no tokens, and the client routes on the decision. Missing
// user or group records already revoked the account's sessions upstream.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input domain.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	ctx, cancel := lookupContext(c, h.cfg.LookupTimeout)
	defer cancel()

	result, err := h.authService.Login(ctx, input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return middleware.Unauthorized("Invalid email or password")
		}
		if errors.Is(err, access.ErrProfileNotFound) {
			return middleware.Unauthorized("Profile not found; contact support")
		}
		if errors.Is(err, access.ErrGroupNotFound) {
			return middleware.Unauthorized("Group not found; contact support")
		}
		return err
	}

	if !result.Decision.Granted {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"decision": result.Decision,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"user":          result.User,
		"group":         result.Group,
		"access_token":  result.Tokens.AccessToken,
		"refresh_token": result.Tokens.RefreshToken,
		"expires_in":    result.Tokens.ExpiresIn,
	})
}

func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var input struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	tokens, err := h.authService.RefreshToken(c.Context(), input.RefreshToken)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			return middleware.Unauthorized("Invalid refresh token")
		}
		if errors.Is(err, auth.ErrUserNotFound) {
			return middleware.Unauthorized("User not found")
		}
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}
