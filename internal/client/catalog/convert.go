package catalog

import (
	"github.com/iudanet/countrybook/internal/models"
	"github.com/iudanet/countrybook/pkg/api"
)

// FromWire converts catalog records into domain countries.
func FromWire(in []api.Country) []models.Country {
	out := make([]models.Country, 0, len(in))
	for i := range in {
		out = append(out, countryFromWire(&in[i]))
	}
	return out
}

func countryFromWire(w *api.Country) models.Country {
	c := models.Country{
		Code:         w.CCA3,
		CommonName:   w.Name.Common,
		OfficialName: w.Name.Official,
		Region:       w.Region,
		Subregion:    w.Subregion,
		FlagImageURL: w.Flags.PNG,
		Capitals:     w.Capital,
		Timezones:    w.Timezones,
		Borders:      w.Borders,
		Population:   w.Population,
		UNMember:     w.UNMember,
		Languages:    w.Languages,
	}
	if c.FlagImageURL == "" {
		c.FlagImageURL = w.Flags.SVG
	}
	if w.Area != nil {
		c.AreaKm2 = *w.Area
	}
	if w.Independent != nil {
		c.Independent = *w.Independent
	}
	if len(w.LatLng) == 2 {
		c.Coordinates = models.Coordinates{Lat: w.LatLng[0], Lon: w.LatLng[1]}
	}
	if len(w.Currencies) > 0 {
		c.Currencies = make(map[string]models.Currency, len(w.Currencies))
		for code, cur := range w.Currencies {
			c.Currencies[code] = models.Currency{Name: cur.Name, Symbol: cur.Symbol}
		}
	}
	return c
}
