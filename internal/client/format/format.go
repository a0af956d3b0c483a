// Package format renders country attributes for display.
package format

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/countrybook/internal/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// utcOffset формат часовых поясов каталога: UTC, UTC+05:30, UTC-04:00
var utcOffset = regexp.MustCompile(`^UTC(?:([+-])(\d{2}):(\d{2}))?$`)

// Number formats n with thousands separators.
func Number(n int64) string {
	return printer.Sprintf("%d", n)
}

// OptionalNumber is Number that renders nil as an empty string.
func OptionalNumber(n *int64) string {
	if n == nil {
		return ""
	}
	return Number(*n)
}

// Area formats an area in square kilometres; zero means unknown.
func Area(km2 float64) string {
	if km2 <= 0 {
		return "n/a"
	}
	return Number(int64(km2+0.5)) + " km²"
}

// Languages joins language names ordered by language code.
func Languages(c *models.Country) string {
	return strings.Join(c.LanguageNames(), ", ")
}

// Currencies joins "Name (Symbol)" entries ordered by currency code.
func Currencies(c *models.Country) string {
	codes := make([]string, 0, len(c.Currencies))
	for code := range c.Currencies {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := c.Currencies[code]
		if cur.Symbol != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", cur.Name, cur.Symbol))
		} else {
			parts = append(parts, cur.Name)
		}
	}
	return strings.Join(parts, ", ")
}

// Zone resolves a catalog time zone ("UTC+05:30") or an IANA name.
func Zone(tz string) (*time.Location, bool) {
	tz = strings.TrimSpace(tz)
	if m := utcOffset.FindStringSubmatch(tz); m != nil {
		if m[1] == "" {
			return time.UTC, true
		}
		hours, _ := strconv.Atoi(m[2])
		minutes, _ := strconv.Atoi(m[3])
		if hours > 14 || minutes > 59 {
			return nil, false
		}
		offset := hours*3600 + minutes*60
		if m[1] == "-" {
			offset = -offset
		}
		return time.FixedZone(tz, offset), true
	}

	if tz == "" {
		return nil, false
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, false
	}
	return loc, true
}

// LocalTime converts t into tz. An unknown zone returns t unchanged.
func LocalTime(t time.Time, tz string) time.Time {
	loc, ok := Zone(tz)
	if !ok {
		return t
	}
	return t.In(loc)
}
