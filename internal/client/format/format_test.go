package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/countrybook/internal/models"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{in: 0, want: "0"},
		{in: 999, want: "999"},
		{in: 1000, want: "1,000"},
		{in: 1380004385, want: "1,380,004,385"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Number(tt.in))
	}
}

func TestOptionalNumber(t *testing.T) {
	assert.Equal(t, "", OptionalNumber(nil))
	n := int64(25000000)
	assert.Equal(t, "25,000,000", OptionalNumber(&n))
}

func TestArea(t *testing.T) {
	assert.Equal(t, "n/a", Area(0))
	assert.Equal(t, "3,287,590 km²", Area(3287590))
	assert.Equal(t, "2 km²", Area(1.5))
}

func TestLanguages(t *testing.T) {
	c := &models.Country{Languages: map[string]string{"hin": "Hindi", "eng": "English"}}
	assert.Equal(t, "English, Hindi", Languages(c))
	assert.Equal(t, "", Languages(&models.Country{}))
}

func TestCurrencies(t *testing.T) {
	c := &models.Country{Currencies: map[string]models.Currency{
		"USD": {Name: "United States dollar", Symbol: "$"},
		"CHF": {Name: "Swiss franc"},
	}}
	assert.Equal(t, "Swiss franc, United States dollar ($)", Currencies(c))
}

func TestLocalTime(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		tz       string
		wantHour int
		wantMin  int
	}{
		{tz: "UTC", wantHour: 12},
		{tz: "UTC+05:30", wantHour: 17, wantMin: 30},
		{tz: "UTC-04:00", wantHour: 8},
		{tz: "UTC+14:00", wantHour: 2},
	}
	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			got := LocalTime(base, tt.tz)
			assert.Equal(t, tt.wantHour, got.Hour())
			assert.Equal(t, tt.wantMin, got.Minute())
			assert.True(t, got.Equal(base))
		})
	}
}

func TestLocalTime_InvalidZone(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, tz := range []string{"", "UTC+25:00", "Mars/Olympus", "UTC+5"} {
		assert.Equal(t, base, LocalTime(base, tz), tz)
	}
}
