package options

import "strings"

// Static tables behind the wizard selects and the dashboard cards. Pure data.

type RoastLevel struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Color string `json:"color"`
}

type BrewMethod struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Level describes one step of a 1-5 sensory scale.
type Level struct {
	Value       int    `json:"value"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var BeanTypes = []string{"Arabica", "Robusta", "Liberica"}

var RoastLevels = []RoastLevel{
	{Value: "light", Label: "Light", Color: "#D4A574"},
	{Value: "medium", Label: "Medium", Color: "#8B6F47"},
	{Value: "dark", Label: "Dark", Color: "#3E2723"},
}

var BrewMethods = []BrewMethod{
	{Name: "V60", Icon: "pourover"},
	{Name: "Espresso", Icon: "espresso"},
	{Name: "French Press", Icon: "french_press"},
	{Name: "Chemex", Icon: "chemex"},
	{Name: "Aeropress", Icon: "aeropress"},
	{Name: "Moka", Icon: "moka_pot"},
	{Name: "Cold Brew", Icon: "cold_brew"},
}

var BodyLevels = []Level{
	{Value: 1, Label: "Delicate", Icon: "💧", Description: "Watery or very soft", Color: "#bfada6"},
	{Value: 2, Label: "Light", Icon: "☁️", Description: "Soft but present", Color: "#a1887f"},
	{Value: 3, Label: "Medium", Icon: "🪶", Description: "Balanced texture", Color: "#8d6e63"},
	{Value: 4, Label: "Full", Icon: "🍫", Description: "Creamy and round", Color: "#6d4c41"},
	{Value: 5, Label: "Heavy", Icon: "🧈", Description: "Dense, oily", Color: "#4e342e"},
}

var AcidityLevels = []Level{
	{Value: 1, Label: "Flat", Icon: "⚪", Description: "No spark at all", Color: "#d4c9c4"},
	{Value: 2, Label: "Low", Icon: "🍊", Description: "Soft, balanced", Color: "#ffcc80"},
	{Value: 3, Label: "Medium", Icon: "🍋", Description: "Bright but harmonious", Color: "#ffb84d"},
	{Value: 4, Label: "High", Icon: "🍏", Description: "Lively and sharp", Color: "#ffad33"},
	{Value: 5, Label: "Intense", Icon: "🌈", Description: "Dominant, vibrant", Color: "#ffa726"},
}

var AftertasteLevels = []Level{
	{Value: 1, Label: "Short", Icon: "🌬️", Description: "Fades quickly", Color: "#e1bee7"},
	{Value: 2, Label: "Soft", Icon: "☁️", Description: "Mild persistence", Color: "#ce93d8"},
	{Value: 3, Label: "Medium", Icon: "🌤️", Description: "Good finish, no bitterness", Color: "#ba68c8"},
	{Value: 4, Label: "Long", Icon: "🌇", Description: "Stays pleasant", Color: "#ab47bc"},
	{Value: 5, Label: "Complex", Icon: "🌌", Description: "Evolves over time", Color: "#8e24aa"},
}

func findLevel(levels []Level, value int) (Level, bool) {
	for _, level := range levels {
		if level.Value == value {
			return level, true
		}
	}
	return Level{}, false
}

// BodyLevel returns the scale entry for a body value.
func BodyLevel(value int) (Level, bool) { return findLevel(BodyLevels, value) }

// AcidityLevel returns the scale entry for an acidity value.
func AcidityLevel(value int) (Level, bool) { return findLevel(AcidityLevels, value) }

// AftertasteLevel returns the scale entry for an aftertaste value.
func AftertasteLevel(value int) (Level, bool) { return findLevel(AftertasteLevels, value) }

// ValidBeanType reports whether the value is one of the fixed bean types.
func ValidBeanType(value string) bool {
	for _, beanType := range BeanTypes {
		if strings.EqualFold(beanType, value) {
			return true
		}
	}
	return false
}

// ValidRoastLevel reports whether the value is one of the fixed roast levels.
func ValidRoastLevel(value string) bool {
	for _, roast := range RoastLevels {
		if roast.Value == value {
			return true
		}
	}
	return false
}

// ValidBrewMethod reports whether the value is one of the fixed brew methods.
func ValidBrewMethod(value string) bool {
	for _, method := range BrewMethods {
		if method.Name == value {
			return true
		}
	}
	return false
}
