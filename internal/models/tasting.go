package models

import "time"

const (
	RoastLight  = "light"
	RoastMedium = "medium"
	RoastDark   = "dark"
)

const (
	BeanArabica  = "Arabica"
	BeanRobusta  = "Robusta"
	BeanLiberica = "Liberica"
)

// Tasting is one persisted coffee-tasting session. Body, Acidity and
// Aftertaste hold the "label - description" strings produced at save time
// from the 1-5 wizard levels, matching what the dashboard displays.
type Tasting struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	Brand      string    `gorm:"not null" json:"brand"`
	CoffeeName string    `gorm:"not null" json:"coffee_name"`
	BeanType   string    `gorm:"not null" json:"bean_type"`
	Origin     string    `gorm:"not null" json:"origin"`
	RoastLevel string    `gorm:"not null" json:"roast_level"`
	BrewMethod string    `gorm:"not null" json:"brew_method"`
	Aroma      string    `gorm:"not null" json:"aroma"`
	Flavor     string    `gorm:"not null" json:"flavor"`
	Body       string    `gorm:"not null" json:"body"`
	Acidity    string    `gorm:"not null" json:"acidity"`
	Aftertaste string    `gorm:"not null" json:"aftertaste"`
	Opinion    string    `gorm:"not null" json:"opinion"`
	Score      int       `gorm:"not null" json:"score"`
	ImageURL   string    `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
}
