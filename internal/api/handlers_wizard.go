package api

import (
	"errors"
	"time"

	"coffeejournal/internal/services"
	"coffeejournal/internal/wizard"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultAutoAdvanceDelay = 400 * time.Millisecond
	maxAutoAdvanceDelay     = 10 * time.Second
)

type wizardState struct {
	Form            wizard.Form               `json:"form"`
	CurrentSection  int                       `json:"current_section"`
	SectionName     string                    `json:"section_name"`
	SectionValidity [wizard.SectionCount]bool `json:"section_validity"`
	Complete        bool                      `json:"complete"`
	HasPending      bool                      `json:"has_pending"`
}

func (handler *Handler) wizardStateFor(c *fiber.Ctx, session *wizard.Session) wizardState {
	pending, err := handler.pendingService.Exists(clientToken(c))
	if err != nil {
		handler.logger.Warn().Err(err).Msg("pending lookup failed")
		pending = false
	}

	current := session.Navigator().Current()
	return wizardState{
		Form:            session.Form(),
		CurrentSection:  current,
		SectionName:     wizard.SectionName(current),
		SectionValidity: session.SectionValidity(),
		Complete:        session.Valid(),
		HasPending:      pending,
	}
}

func (handler *Handler) session(c *fiber.Ctx) *wizard.Session {
	return handler.sessions.Get(clientToken(c))
}

func (handler *Handler) GetWizardState(c *fiber.Ctx) error {
	return c.JSON(handler.wizardStateFor(c, handler.session(c)))
}

func (handler *Handler) UpdateWizardSection(c *fiber.Ctx) error {
	name := c.Params("name")
	if _, known := wizard.SectionIndex(name); !known {
		return apiError(c, fiber.StatusNotFound, "unknown section "+name)
	}

	session := handler.session(c)
	if err := session.UpdateSection(name, c.Body()); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid section payload")
	}
	return c.JSON(handler.wizardStateFor(c, session))
}

type navResponse struct {
	wizard.NavResult
	State wizardState `json:"state"`
}

func (handler *Handler) navResponseFor(c *fiber.Ctx, session *wizard.Session, result wizard.NavResult) error {
	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(navResponse{
		NavResult: result,
		State:     handler.wizardStateFor(c, session),
	})
}

func (handler *Handler) WizardNext(c *fiber.Ctx) error {
	session := handler.session(c)
	return handler.navResponseFor(c, session, session.Next())
}

func (handler *Handler) WizardPrevious(c *fiber.Ctx) error {
	session := handler.session(c)
	return handler.navResponseFor(c, session, session.Previous())
}

func (handler *Handler) WizardGoTo(c *fiber.Ctx) error {
	input := struct {
		Index int `json:"index"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	session := handler.session(c)
	return handler.navResponseFor(c, session, session.GoTo(input.Index))
}

func (handler *Handler) WizardAutoAdvance(c *fiber.Ctx) error {
	input := struct {
		Section int   `json:"section"`
		DelayMS int64 `json:"delay_ms"`
	}{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	delay := time.Duration(input.DelayMS) * time.Millisecond
	if delay <= 0 {
		delay = defaultAutoAdvanceDelay
	}
	if delay > maxAutoAdvanceDelay {
		delay = maxAutoAdvanceDelay
	}

	scheduled := handler.session(c).AutoAdvance(input.Section, delay)
	return c.JSON(fiber.Map{"scheduled": scheduled})
}

func (handler *Handler) WizardReset(c *fiber.Ctx) error {
	session := handler.session(c)
	session.Reset()
	return c.JSON(handler.wizardStateFor(c, session))
}

// WizardAnotherCup keeps the coffee identity and roast data and clears the
// per-cup sections, so the next brew of the same bag starts on sensory notes.
func (handler *Handler) WizardAnotherCup(c *fiber.Ctx) error {
	session := handler.session(c)
	session.ResetSensoryOnward()
	return c.JSON(handler.wizardStateFor(c, session))
}

// WizardSave persists the completed form as a tasting. Unauthenticated saves
// stage the whole session into the pending slot so nothing is lost across the
// login redirect; validation failures report the first incomplete section and
// leave the session untouched.
func (handler *Handler) WizardSave(c *fiber.Ctx) error {
	session := handler.session(c)

	user, err := handler.authenticateRequest(c)
	if err != nil {
		if stageErr := handler.pendingService.Stage(clientToken(c), session.Snapshot()); stageErr != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to stage submission")
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":  "authentication required",
			"staged": true,
		})
	}

	entry, err := handler.tastingService.SaveFromForm(user.ID, session.Form())
	if err != nil {
		validationErr := &services.ValidationError{}
		if errors.As(err, &validationErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":        "form is incomplete",
				"section":      validationErr.Section,
				"section_name": validationErr.SectionName,
			})
		}
		handler.logger.Error().Err(err).Msg("saving tasting failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to save tasting")
	}

	if err := handler.pendingService.Discard(clientToken(c)); err != nil {
		handler.logger.Warn().Err(err).Msg("clearing pending slot failed")
	}
	handler.sessions.Drop(clientToken(c))

	handler.logger.Info().
		Uint("user_id", user.ID).
		Uint("tasting_id", entry.ID).
		Str("coffee", entry.CoffeeName).
		Msg("tasting saved")
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// WizardRestore loads the staged pending submission back into the live
// session, typically right after the user signs in.
func (handler *Handler) WizardRestore(c *fiber.Ctx) error {
	snapshot, found, err := handler.pendingService.Restore(clientToken(c))
	if err != nil {
		handler.logger.Error().Err(err).Msg("restoring pending submission failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to restore submission")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "nothing to restore")
	}

	session := handler.session(c)
	session.Restore(snapshot)
	return c.JSON(handler.wizardStateFor(c, session))
}
