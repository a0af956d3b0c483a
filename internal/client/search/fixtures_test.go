package search

import "github.com/iudanet/countrybook/internal/models"

func sampleCountries() []models.Country {
	return []models.Country{
		{
			Code: "USA", CommonName: "United States", OfficialName: "United States of America",
			Region: "Americas", Population: 331000000, AreaKm2: 9372610,
			Languages: map[string]string{"eng": "English"},
		},
		{
			Code: "IND", CommonName: "India", OfficialName: "Republic of India",
			Region: "Asia", Population: 1380000000, AreaKm2: 3287590,
			Languages: map[string]string{"eng": "English", "hin": "Hindi"},
		},
		{
			Code: "AUS", CommonName: "Australia", OfficialName: "Commonwealth of Australia",
			Region: "Oceania", Population: 25000000, AreaKm2: 7692024,
			Languages: map[string]string{"eng": "English"},
		},
		{
			Code: "IDN", CommonName: "Indonesia", OfficialName: "Republic of Indonesia",
			Region: "Asia", Population: 273500000, AreaKm2: 1904569,
			Languages: map[string]string{"ind": "Indonesian"},
		},
		{
			Code: "FRA", CommonName: "France", OfficialName: "French Republic",
			Region: "Europe", Population: 67000000, AreaKm2: 551695,
			Languages: map[string]string{"fra": "French"},
		},
		{
			Code: "ATA", CommonName: "Antarctica", OfficialName: "Antarctica",
			Region: "Antarctic", Population: 1000,
		},
	}
}

func codes(countries []models.Country) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Code)
	}
	return out
}

type fixedUser string

func (u fixedUser) Username() string { return string(u) }
