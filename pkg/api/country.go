// Package api contains the REST Countries v3.1 wire format.
package api

// CountryName name block of a country.
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Currency одна валюта в ответе каталога
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Flags ссылки на изображения флага
type Flags struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
	Alt string `json:"alt,omitempty"`
}

// Country одна запись каталога как ее отдает /v3.1
//
// Area is a pointer because some territories come without it.
type Country struct {
	Languages   map[string]string   `json:"languages,omitempty"`
	Currencies  map[string]Currency `json:"currencies,omitempty"`
	Area        *float64            `json:"area,omitempty"`
	Independent *bool               `json:"independent,omitempty"`
	Flags       Flags               `json:"flags"`
	Name        CountryName         `json:"name"`
	CCA3        string              `json:"cca3"`
	Region      string              `json:"region"`
	Subregion   string              `json:"subregion,omitempty"`
	Capital     []string            `json:"capital,omitempty"`
	Timezones   []string            `json:"timezones,omitempty"`
	LatLng      []float64           `json:"latlng,omitempty"`
	Borders     []string            `json:"borders,omitempty"`
	Population  int64               `json:"population"`
	UNMember    bool                `json:"unMember"`
}
