package services

import (
	"strings"

	"coffeejournal/internal/models"
	"coffeejournal/internal/wizard"
)

// ValidationError reports the first wizard section that fails validation when
// a save is attempted.
type ValidationError struct {
	Section     int
	SectionName string
}

func (err *ValidationError) Error() string {
	return "section " + err.SectionName + " is incomplete"
}

type TastingWriter interface {
	Create(entry *models.Tasting) error
}

type TastingService struct {
	tastings TastingWriter
}

func NewTastingService(tastings TastingWriter) *TastingService {
	return &TastingService{tastings: tastings}
}

// SaveFromForm validates the completed form and persists it as a tasting for
// the given user. Numeric sensory levels are stored as their display strings
// so records stay readable without the option tables.
func (service *TastingService) SaveFromForm(userID uint, form wizard.Form) (models.Tasting, error) {
	if invalid := firstInvalidSection(form); invalid >= 0 {
		return models.Tasting{}, &ValidationError{
			Section:     invalid,
			SectionName: wizard.SectionName(invalid),
		}
	}

	entry := models.Tasting{
		UserID:     userID,
		Brand:      strings.TrimSpace(form.Identity.Brand),
		CoffeeName: strings.TrimSpace(form.Identity.CoffeeName),
		BeanType:   form.Identity.BeanType,
		Origin:     strings.TrimSpace(form.Identity.Origin),
		RoastLevel: form.Roast.RoastLevel,
		BrewMethod: form.Roast.BrewMethod,
		Aroma:      strings.TrimSpace(form.Sensory.Aroma),
		Flavor:     strings.TrimSpace(form.Sensory.Flavor),
		Body:       wizard.BodyDescription(form.Sensory.Body),
		Acidity:    wizard.AcidityDescription(form.Flavor.Acidity),
		Aftertaste: wizard.AftertasteDescription(form.Flavor.Aftertaste, strings.TrimSpace(form.Flavor.AftertasteDescription)),
		Opinion:    strings.TrimSpace(form.Score.Opinion),
		Score:      form.Score.Score,
		ImageURL:   form.Image.Preview,
	}
	if err := service.tastings.Create(&entry); err != nil {
		return models.Tasting{}, err
	}
	return entry, nil
}

func firstInvalidSection(form wizard.Form) int {
	for index := 0; index < wizard.SectionCount; index++ {
		if !form.SectionValid(index) {
			return index
		}
	}
	return -1
}
