package options

import "strings"

// Country is one known coffee-producing country. Origin input is free text;
// when it matches a country name the client decorates it with the flag code.
type Country struct {
	Flag string `json:"flag"`
	Name string `json:"name"`
}

var countries = []Country{
	{Flag: "br", Name: "Brazil"},
	{Flag: "co", Name: "Colombia"},
	{Flag: "hn", Name: "Honduras"},
	{Flag: "pe", Name: "Peru"},
	{Flag: "mx", Name: "Mexico"},
	{Flag: "gt", Name: "Guatemala"},
	{Flag: "ni", Name: "Nicaragua"},
	{Flag: "sv", Name: "El Salvador"},
	{Flag: "cr", Name: "Costa Rica"},
	{Flag: "pa", Name: "Panama"},
	{Flag: "do", Name: "Dominican Republic"},
	{Flag: "jm", Name: "Jamaica"},
	{Flag: "ve", Name: "Venezuela"},
	{Flag: "ec", Name: "Ecuador"},
	{Flag: "bo", Name: "Bolivia"},
	{Flag: "cu", Name: "Cuba"},
	{Flag: "pr", Name: "Puerto Rico"},
	{Flag: "et", Name: "Ethiopia"},
	{Flag: "ug", Name: "Uganda"},
	{Flag: "ci", Name: "Ivory Coast"},
	{Flag: "ke", Name: "Kenya"},
	{Flag: "tz", Name: "Tanzania"},
	{Flag: "rw", Name: "Rwanda"},
	{Flag: "bi", Name: "Burundi"},
	{Flag: "cm", Name: "Cameroon"},
	{Flag: "cd", Name: "Democratic Republic of the Congo"},
	{Flag: "mg", Name: "Madagascar"},
	{Flag: "vn", Name: "Vietnam"},
	{Flag: "id", Name: "Indonesia"},
	{Flag: "in", Name: "India"},
	{Flag: "la", Name: "Laos"},
	{Flag: "th", Name: "Thailand"},
	{Flag: "ph", Name: "Philippines"},
	{Flag: "cn", Name: "China"},
	{Flag: "mm", Name: "Myanmar"},
	{Flag: "tl", Name: "East Timor"},
	{Flag: "ye", Name: "Yemen"},
	{Flag: "pg", Name: "Papua New Guinea"},
	{Flag: "sb", Name: "Solomon Islands"},
	{Flag: "us", Name: "Hawaii"},
}

// Countries returns a copy of the known coffee-producing country list.
func Countries() []Country {
	list := make([]Country, len(countries))
	copy(list, countries)
	return list
}

// FindCountry matches a free-text origin against the known list, ignoring
// case and surrounding whitespace.
func FindCountry(name string) (Country, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for _, country := range countries {
		if strings.ToLower(country.Name) == needle {
			return country, true
		}
	}
	return Country{}, false
}

// CountryFlag returns the flag code for an origin, or "xx" when unknown.
func CountryFlag(name string) string {
	if country, ok := FindCountry(name); ok {
		return country.Flag
	}
	return "xx"
}
