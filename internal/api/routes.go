package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/options", handler.GetOptions)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	wizard := api.Group("/wizard", handler.ClientToken)
	wizard.Get("", handler.GetWizardState)
	wizard.Patch("/sections/:name", handler.UpdateWizardSection)
	wizard.Post("/next", handler.WizardNext)
	wizard.Post("/previous", handler.WizardPrevious)
	wizard.Post("/goto", handler.WizardGoTo)
	wizard.Post("/auto-advance", handler.WizardAutoAdvance)
	wizard.Post("/reset", handler.WizardReset)
	wizard.Post("/another-cup", handler.WizardAnotherCup)
	wizard.Post("/image", handler.WizardImage)
	wizard.Delete("/image", handler.WizardRemoveImage)
	wizard.Post("/save", handler.WizardSave)
	wizard.Post("/restore", handler.WizardRestore)

	tastings := api.Group("/tastings", handler.AuthRequired)
	tastings.Get("", handler.GetTastings)
	tastings.Get("/:id", handler.GetTasting)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)
}
