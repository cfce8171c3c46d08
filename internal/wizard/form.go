package wizard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"coffeejournal/internal/options"
)

// Section indices follow the five wizard slides in order.
const (
	SectionIdentity = 0
	SectionRoast    = 1
	SectionSensory  = 2
	SectionFlavor   = 3
	SectionScore    = 4

	SectionCount = 5
)

const (
	maxIdentityFieldLength = 50
	maxSensoryFieldLength  = 200
	maxOpinionLength       = 500
)

var sectionNames = [SectionCount]string{"identity", "roast", "sensory", "flavor", "score"}

var sectionTitles = [SectionCount]string{
	"Coffee Identity",
	"Roast & Preparation",
	"Sensory Notes",
	"Flavor",
	"Score",
}

// SectionName returns the wire name of a section index, or "" when out of range.
func SectionName(index int) string {
	if index < 0 || index >= SectionCount {
		return ""
	}
	return sectionNames[index]
}

// SectionTitle returns the display title of a section index, or "" when out of range.
func SectionTitle(index int) string {
	if index < 0 || index >= SectionCount {
		return ""
	}
	return sectionTitles[index]
}

// SectionIndex resolves a wire name back to its index.
func SectionIndex(name string) (int, bool) {
	for index, candidate := range sectionNames {
		if candidate == name {
			return index, true
		}
	}
	return 0, false
}

type Identity struct {
	Brand      string `json:"brand"`
	CoffeeName string `json:"coffee_name"`
	BeanType   string `json:"bean_type"`
	Origin     string `json:"origin"`
}

type Roast struct {
	RoastLevel string `json:"roast_level"`
	BrewMethod string `json:"brew_method"`
}

type Sensory struct {
	Aroma  string `json:"aroma"`
	Flavor string `json:"flavor"`
	Body   int    `json:"body"`
}

type Flavor struct {
	Acidity               int    `json:"acidity"`
	Aftertaste            int    `json:"aftertaste"`
	AftertasteDescription string `json:"aftertaste_description"`
}

type Score struct {
	Opinion string `json:"opinion"`
	Score   int    `json:"score"`
}

// Image references an uploaded attachment: the stored file plus the public
// preview URL handed back to the client.
type Image struct {
	File    string `json:"file"`
	Preview string `json:"preview"`
}

// Form holds the five section sub-records and the image attachment for one
// in-progress tasting. It carries no locking; the owning session serializes
// access.
type Form struct {
	Identity Identity `json:"identity"`
	Roast    Roast    `json:"roast"`
	Sensory  Sensory  `json:"sensory"`
	Flavor   Flavor   `json:"flavor"`
	Score    Score    `json:"score"`
	Image    Image    `json:"image"`
}

// Patch types mirror the sections with optional fields: only keys present in
// the request replace existing values (shallow merge).

type IdentityPatch struct {
	Brand      *string `json:"brand"`
	CoffeeName *string `json:"coffee_name"`
	BeanType   *string `json:"bean_type"`
	Origin     *string `json:"origin"`
}

type RoastPatch struct {
	RoastLevel *string `json:"roast_level"`
	BrewMethod *string `json:"brew_method"`
}

type SensoryPatch struct {
	Aroma  *string `json:"aroma"`
	Flavor *string `json:"flavor"`
	Body   *int    `json:"body"`
}

type FlavorPatch struct {
	Acidity               *int    `json:"acidity"`
	Aftertaste            *int    `json:"aftertaste"`
	AftertasteDescription *string `json:"aftertaste_description"`
}

type ScorePatch struct {
	Opinion *string `json:"opinion"`
	Score   *int    `json:"score"`
}

// ApplySection merges a JSON partial into the named section. Unknown section
// names and malformed JSON are the only error cases; a well-typed patch never
// fails and touches only the fields it carries.
func (form *Form) ApplySection(name string, raw []byte) error {
	switch name {
	case "identity":
		patch := IdentityPatch{}
		if err := json.Unmarshal(raw, &patch); err != nil {
			return fmt.Errorf("decode identity patch: %w", err)
		}
		form.applyIdentity(patch)
	case "roast":
		patch := RoastPatch{}
		if err := json.Unmarshal(raw, &patch); err != nil {
			return fmt.Errorf("decode roast patch: %w", err)
		}
		form.applyRoast(patch)
	case "sensory":
		patch := SensoryPatch{}
		if err := json.Unmarshal(raw, &patch); err != nil {
			return fmt.Errorf("decode sensory patch: %w", err)
		}
		form.applySensory(patch)
	case "flavor":
		patch := FlavorPatch{}
		if err := json.Unmarshal(raw, &patch); err != nil {
			return fmt.Errorf("decode flavor patch: %w", err)
		}
		form.applyFlavor(patch)
	case "score":
		patch := ScorePatch{}
		if err := json.Unmarshal(raw, &patch); err != nil {
			return fmt.Errorf("decode score patch: %w", err)
		}
		form.applyScore(patch)
	default:
		return fmt.Errorf("unknown section %q", name)
	}
	return nil
}

func (form *Form) applyIdentity(patch IdentityPatch) {
	if patch.Brand != nil {
		form.Identity.Brand = *patch.Brand
	}
	if patch.CoffeeName != nil {
		form.Identity.CoffeeName = *patch.CoffeeName
	}
	if patch.BeanType != nil {
		form.Identity.BeanType = *patch.BeanType
	}
	if patch.Origin != nil {
		form.Identity.Origin = *patch.Origin
	}
}

func (form *Form) applyRoast(patch RoastPatch) {
	if patch.RoastLevel != nil {
		form.Roast.RoastLevel = *patch.RoastLevel
	}
	if patch.BrewMethod != nil {
		form.Roast.BrewMethod = *patch.BrewMethod
	}
}

func (form *Form) applySensory(patch SensoryPatch) {
	if patch.Aroma != nil {
		form.Sensory.Aroma = *patch.Aroma
	}
	if patch.Flavor != nil {
		form.Sensory.Flavor = *patch.Flavor
	}
	if patch.Body != nil {
		form.Sensory.Body = *patch.Body
	}
}

func (form *Form) applyFlavor(patch FlavorPatch) {
	if patch.Acidity != nil {
		form.Flavor.Acidity = *patch.Acidity
	}
	if patch.Aftertaste != nil {
		form.Flavor.Aftertaste = *patch.Aftertaste
	}
	if patch.AftertasteDescription != nil {
		form.Flavor.AftertasteDescription = *patch.AftertasteDescription
	}
}

func (form *Form) applyScore(patch ScorePatch) {
	if patch.Opinion != nil {
		form.Score.Opinion = *patch.Opinion
	}
	if patch.Score != nil {
		form.Score.Score = *patch.Score
	}
}

func filledWithin(value string, limit int) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed != "" && len([]rune(trimmed)) <= limit
}

func levelInRange(value int) bool {
	return value >= 1 && value <= 5
}

// SectionValid reports whether the indexed section satisfies its predicate.
// Out-of-range indices are invalid.
func (form *Form) SectionValid(index int) bool {
	switch index {
	case SectionIdentity:
		return filledWithin(form.Identity.Brand, maxIdentityFieldLength) &&
			filledWithin(form.Identity.CoffeeName, maxIdentityFieldLength) &&
			filledWithin(form.Identity.Origin, maxIdentityFieldLength) &&
			options.ValidBeanType(form.Identity.BeanType)
	case SectionRoast:
		return options.ValidRoastLevel(form.Roast.RoastLevel) &&
			options.ValidBrewMethod(form.Roast.BrewMethod)
	case SectionSensory:
		return filledWithin(form.Sensory.Aroma, maxSensoryFieldLength) &&
			filledWithin(form.Sensory.Flavor, maxSensoryFieldLength) &&
			levelInRange(form.Sensory.Body)
	case SectionFlavor:
		return levelInRange(form.Flavor.Acidity) &&
			levelInRange(form.Flavor.Aftertaste) &&
			strings.TrimSpace(form.Flavor.AftertasteDescription) != ""
	case SectionScore:
		return filledWithin(form.Score.Opinion, maxOpinionLength) &&
			form.Score.Score > 0 && form.Score.Score <= 10
	default:
		return false
	}
}

// Valid reports whether every section passes its predicate.
func (form *Form) Valid() bool {
	for index := 0; index < SectionCount; index++ {
		if !form.SectionValid(index) {
			return false
		}
	}
	return true
}

// Reset restores every section and the image to their empty defaults.
func (form *Form) Reset() {
	*form = Form{}
}

// ResetSensoryOnward clears the sensory, flavor and score sections plus the
// image while keeping identity and roast, for logging another cup of the
// same coffee.
func (form *Form) ResetSensoryOnward() {
	form.Sensory = Sensory{}
	form.Flavor = Flavor{}
	form.Score = Score{}
	form.Image = Image{}
}

// BodyDescription translates a body level into its persisted display string.
func BodyDescription(value int) string {
	if level, ok := options.BodyLevel(value); ok {
		return level.Label + " - " + level.Description
	}
	return strconv.Itoa(value)
}

// AcidityDescription translates an acidity level into its persisted display string.
func AcidityDescription(value int) string {
	if level, ok := options.AcidityLevel(value); ok {
		return level.Label + " - " + level.Description
	}
	return strconv.Itoa(value)
}

// AftertasteDescription folds the aftertaste level and the free-text note
// into one persisted string.
func AftertasteDescription(value int, description string) string {
	if level, ok := options.AftertasteLevel(value); ok {
		return level.Label + " - " + level.Description + ". " + description
	}
	return description
}
