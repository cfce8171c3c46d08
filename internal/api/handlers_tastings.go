package api

import (
	"strconv"

	"coffeejournal/internal/dashboard"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetTastings(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tastings, err := handler.repositories.Tastings.ListByUser(user.ID)
	if err != nil {
		handler.logger.Error().Err(err).Msg("listing tastings failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load tastings")
	}

	total, err := handler.repositories.Tastings.CountByUser(user.ID)
	if err != nil {
		handler.logger.Error().Err(err).Msg("counting tastings failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load tastings")
	}

	filtered := dashboard.Filter(tastings, c.Query("q"), dashboard.ParseSortOrder(c.Query("sort")))
	return c.JSON(fiber.Map{"tastings": filtered, "total": total})
}

func (handler *Handler) GetTasting(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	tastingID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid tasting id")
	}

	entry, found, err := handler.repositories.Tastings.FindByIDForUser(uint(tastingID), user.ID)
	if err != nil {
		handler.logger.Error().Err(err).Msg("loading tasting failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load tasting")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "tasting not found")
	}
	return c.JSON(entry)
}

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.dashboardService.BuildOverview(user.ID, c.Query("q"), dashboard.ParseSortOrder(c.Query("sort")))
	if err != nil {
		handler.logger.Error().Err(err).Msg("building dashboard failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}
	return c.JSON(overview)
}
