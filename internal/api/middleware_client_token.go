package api

import (
	"strings"

	"coffeejournal/internal/security"
	"github.com/gofiber/fiber/v2"
)

const clientTokenTTLDays = 30

// ClientToken guarantees every wizard request carries the opaque token that
// keys its in-memory session and its pending-submission slot. The token is
// independent of authentication so an anonymous draft survives a login.
func (handler *Handler) ClientToken(c *fiber.Ctx) error {
	token := strings.TrimSpace(c.Cookies(clientCookieName))
	if token == "" {
		minted, err := security.NewClientToken()
		if err != nil {
			handler.logger.Error().Err(err).Msg("minting client token failed")
			return apiError(c, fiber.StatusInternalServerError, "failed to start session")
		}
		token = minted
		c.Cookie(&fiber.Cookie{
			Name:     clientCookieName,
			Value:    token,
			Path:     "/",
			HTTPOnly: true,
			Secure:   handler.cookieSecure,
			SameSite: "Lax",
			MaxAge:   clientTokenTTLDays * 24 * 60 * 60,
		})
	}

	c.Locals(contextClientKey, token)
	return c.Next()
}

func clientToken(c *fiber.Ctx) string {
	token, _ := c.Locals(contextClientKey).(string)
	return token
}
