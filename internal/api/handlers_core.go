package api

import (
	"coffeejournal/internal/options"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	sqlDB, err := handler.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// GetOptions serves the static tables the client renders the wizard from.
func (handler *Handler) GetOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"bean_types":        options.BeanTypes,
		"roast_levels":      options.RoastLevels,
		"brew_methods":      options.BrewMethods,
		"body_levels":       options.BodyLevels,
		"acidity_levels":    options.AcidityLevels,
		"aftertaste_levels": options.AftertasteLevels,
		"countries":         options.Countries(),
	})
}
