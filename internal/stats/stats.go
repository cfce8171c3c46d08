package stats

import (
	"fmt"
	"sort"
	"strings"

	"coffeejournal/internal/models"
	"coffeejournal/internal/options"
)

// UnknownValue buckets records whose categorical field is empty.
const UnknownValue = "Unknown"

// NoDataOrigin is the favorite-origin sentinel for an empty tasting list.
const NoDataOrigin = "N/A"

const minRecordsForTrend = 3

type TopOrigin struct {
	Name  string `json:"name"`
	Flag  string `json:"flag"`
	Count int    `json:"count"`
}

type Insight struct {
	Message string `json:"message"`
	Icon    string `json:"icon"`
}

// DashboardStatistics is recomputed from the full tasting list on every
// load; nothing here is persisted or mutated in place.
type DashboardStatistics struct {
	TotalTastings      int         `json:"total_tastings"`
	AverageScore       float64     `json:"average_score"`
	FavoriteOrigin     string      `json:"favorite_origin"`
	TopOrigins         []TopOrigin `json:"top_origins"`
	FavoriteRoast      string      `json:"favorite_roast"`
	FavoriteBrewMethod string      `json:"favorite_brew_method"`
	TrendSentence      string      `json:"trend_sentence"`
	Insights           []Insight   `json:"insights"`
}

// counter is a frequency map that remembers first-seen order, so "favorite"
// ties always break toward the key encountered first in the input.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if key == "" {
		key = UnknownValue
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) favorite() (string, int) {
	best := ""
	bestCount := 0
	for _, key := range c.order {
		if c.counts[key] > bestCount {
			best = key
			bestCount = c.counts[key]
		}
	}
	return best, bestCount
}

func (c *counter) top(limit int) []TopOrigin {
	entries := make([]TopOrigin, 0, len(c.order))
	for _, key := range c.order {
		entries = append(entries, TopOrigin{
			Name:  key,
			Flag:  options.CountryFlag(key),
			Count: c.counts[key],
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Aggregate computes the dashboard statistics for a tasting list. It is a
// pure function: counts and the average are order-independent, while
// favorites tie-break on first-seen input order.
func Aggregate(tastings []models.Tasting) DashboardStatistics {
	total := len(tastings)
	if total == 0 {
		return DashboardStatistics{
			FavoriteOrigin: NoDataOrigin,
			TopOrigins:     []TopOrigin{},
			Insights:       []Insight{},
		}
	}

	scoreSum := 0
	origins := newCounter()
	roasts := newCounter()
	methods := newCounter()
	for _, tasting := range tastings {
		scoreSum += tasting.Score
		origins.add(tasting.Origin)
		roasts.add(normalizeRoast(tasting.RoastLevel))
		methods.add(tasting.BrewMethod)
	}

	favoriteOrigin, _ := origins.favorite()
	favoriteRoastKey, _ := roasts.favorite()
	favoriteMethod, _ := methods.favorite()

	return DashboardStatistics{
		TotalTastings:      total,
		AverageScore:       float64(scoreSum) / float64(total),
		FavoriteOrigin:     favoriteOrigin,
		TopOrigins:         origins.top(3),
		FavoriteRoast:      roastLabel(favoriteRoastKey),
		FavoriteBrewMethod: favoriteMethod,
		TrendSentence:      trendSentence(tastings),
		Insights:           buildInsights(tastings),
	}
}

// normalizeRoast folds raw roast values onto the light/medium/dark scale.
func normalizeRoast(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch value {
	case models.RoastLight, models.RoastMedium, models.RoastDark:
		return value
	}
	return ""
}

func roastLabel(key string) string {
	for _, roast := range options.RoastLevels {
		if roast.Value == key {
			return roast.Label
		}
	}
	return key
}

// levelLabel extracts the scale label from a persisted "label - description"
// string.
func levelLabel(value string) string {
	label, _, _ := strings.Cut(value, " - ")
	return strings.TrimSpace(label)
}

func dominantLabels(tastings []models.Tasting) (string, string) {
	bodies := newCounter()
	acidities := newCounter()
	for _, tasting := range tastings {
		if label := levelLabel(tasting.Body); label != "" {
			bodies.add(label)
		}
		if label := levelLabel(tasting.Acidity); label != "" {
			acidities.add(label)
		}
	}
	body, _ := bodies.favorite()
	acidity, _ := acidities.favorite()
	return body, acidity
}

func trendSentence(tastings []models.Tasting) string {
	if len(tastings) < minRecordsForTrend {
		return "Log a few more tastings to reveal your taste trend."
	}

	body, acidity := dominantLabels(tastings)
	switch {
	case body != "" && acidity != "":
		return fmt.Sprintf("You prefer coffees with a %s body and %s acidity.", strings.ToLower(body), strings.ToLower(acidity))
	case body != "":
		return fmt.Sprintf("You prefer coffees with a %s body.", strings.ToLower(body))
	case acidity != "":
		return fmt.Sprintf("You prefer coffees with %s acidity.", strings.ToLower(acidity))
	}
	return "Keep exploring to build up your taste profile."
}

// buildInsights assembles up to five sentences in a fixed order, each only
// when its underlying computation is well-defined.
func buildInsights(tastings []models.Tasting) []Insight {
	insights := make([]Insight, 0, 5)
	if len(tastings) == 0 {
		return insights
	}

	top := tastings[0]
	for _, tasting := range tastings[1:] {
		if tasting.Score > top.Score {
			top = tasting
		}
	}
	insights = append(insights, Insight{
		Message: fmt.Sprintf("Your favorite coffee so far is %s, %s with a score of %d.", top.CoffeeName, top.Origin, top.Score),
		Icon:    "star",
	})

	methods := newCounter()
	for _, tasting := range tastings {
		if tasting.BrewMethod != "" {
			methods.add(tasting.BrewMethod)
		}
	}
	if method, count := methods.favorite(); method != "" {
		insights = append(insights, Insight{
			Message: fmt.Sprintf("%s is your go-to brew method with %d tastings.", method, count),
			Icon:    "coffee",
		})
	}

	if body, acidity := dominantLabels(tastings); body != "" && acidity != "" {
		insights = append(insights, Insight{
			Message: fmt.Sprintf("You prefer coffees with a %s body and %s acidity.", strings.ToLower(body), strings.ToLower(acidity)),
			Icon:    "heart",
		})
	}

	scoreSum := 0
	for _, tasting := range tastings {
		scoreSum += tasting.Score
	}
	average := float64(scoreSum) / float64(len(tastings))
	insights = append(insights, Insight{
		Message: fmt.Sprintf("Your average score is %.1f out of 10. Keep exploring new coffees!", average),
		Icon:    "trend-up",
	})

	origins := newCounter()
	for _, tasting := range tastings {
		if tasting.Origin != "" {
			origins.add(tasting.Origin)
		}
	}
	if origin, count := origins.favorite(); origin != "" {
		insights = append(insights, Insight{
			Message: fmt.Sprintf("You have tasted %d coffees from %s. It is your most explored origin!", count, origin),
			Icon:    "lightbulb",
		})
	}

	return insights
}
