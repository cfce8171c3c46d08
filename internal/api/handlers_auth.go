package api

import (
	"errors"

	"coffeejournal/internal/services"
	"github.com/gofiber/fiber/v2"
)

type credentialsInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Register(input.Email, input.Password, input.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAuthCredentialsInvalid):
			return apiError(c, fiber.StatusBadRequest, "email and password are required")
		case errors.Is(err, services.ErrWeakPassword):
			return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with upper, lower and digit")
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		}
		handler.logger.Error().Err(err).Msg("registration failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthCredentialsInvalid) {
			return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		handler.logger.Error().Err(err).Msg("login failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(user)
}
