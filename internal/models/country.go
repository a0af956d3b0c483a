package models

import "slices"

// Currency описывает валюту страны.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Coordinates географические координаты (широта, долгота).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Country is a read-only snapshot of one catalog entry.
// Code (cca3) is the identity key.
type Country struct {
	Languages    map[string]string   `json:"languages"`  // код языка -> отображаемое имя
	Currencies   map[string]Currency `json:"currencies"` // код валюты -> описание
	Code         string              `json:"code"`
	CommonName   string              `json:"commonName"`
	OfficialName string              `json:"officialName"`
	Region       string              `json:"region"`
	Subregion    string              `json:"subregion"`
	FlagImageURL string              `json:"flagImageUrl"`
	Capitals     []string            `json:"capitals"`
	Timezones    []string            `json:"timezones"`
	Borders      []string            `json:"borders"`
	Coordinates  Coordinates         `json:"coordinates"`
	Population   int64               `json:"population"`
	AreaKm2      float64             `json:"areaKm2"` // 0 если каталог не вернул площадь
	Independent  bool                `json:"independent"`
	UNMember     bool                `json:"unMember"`
}

// Capital returns the first listed capital or an empty string.
func (c *Country) Capital() string {
	if len(c.Capitals) == 0 {
		return ""
	}
	return c.Capitals[0]
}

// SpeaksLanguage reports whether the country lists language either by its
// display name or by its language code.
func (c *Country) SpeaksLanguage(language string) bool {
	if _, ok := c.Languages[language]; ok {
		return true
	}
	for _, name := range c.Languages {
		if name == language {
			return true
		}
	}
	return false
}

// LanguageNames returns display names ordered by language code.
func (c *Country) LanguageNames() []string {
	codes := make([]string, 0, len(c.Languages))
	for code := range c.Languages {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		names = append(names, c.Languages[code])
	}
	return names
}
