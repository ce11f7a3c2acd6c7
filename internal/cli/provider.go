package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/api"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/cache"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/geo"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/hijri"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/schedule"
)

// resolvedLocation holds the result of location resolution.
type resolvedLocation struct {
	Lat, Lon float64
	City     string
	Country  string
	Timezone string // optional hint from geo-detection
	// Assumed is true when the coordinates came from the timezone fallback
	// table rather than explicit input or geolocation.
	Assumed bool
}

// fetchResult holds the data behind one rendered day.
type fetchResult struct {
	Times    schedule.DayTimes
	Meta     api.Meta
	DateInfo api.DateInfo
	// Approximate is true when the times were computed locally because
	// neither the cache nor the API could serve the request.
	Approximate bool
}

// resolveLocation determines the effective location.
// Priority: CLI flags / config coordinates > cached geolocation >
// IP auto-detect > timezone fallback table.
func resolveLocation(lat, lon float64, c *cache.Cache) resolvedLocation {
	if lat != 0 || lon != 0 {
		return resolvedLocation{Lat: lat, Lon: lon}
	}

	// Try cached geolocation first.
	if c != nil {
		if cached := c.LoadGeo(); cached != nil {
			log.Debug().Str("city", cached.City).Msg("using cached geolocation")
			return resolvedLocation{
				Lat:      cached.Latitude,
				Lon:      cached.Longitude,
				City:     cached.City,
				Country:  cached.Country,
				Timezone: cached.Timezone,
			}
		}
	}

	// Fall back to IP-based geolocation.
	detected, err := geo.DetectLocation()
	if err == nil {
		if c != nil {
			_ = c.SaveGeo(detected) // best-effort
		}
		return resolvedLocation{
			Lat:      detected.Latitude,
			Lon:      detected.Longitude,
			City:     detected.City,
			Country:  detected.Country,
			Timezone: detected.Timezone,
		}
	}

	// Last resort: assume coordinates from the system timezone. The tracker
	// must keep rendering offline, so this never errors.
	tz := os.Getenv("TZ")
	if tz == "" {
		tz = time.Local.String()
	}
	fallback := geo.DefaultCoordinates(tz)
	log.Warn().
		Err(err).
		Str("timezone", tz).
		Str("city", fallback.City).
		Msg("geolocation unavailable, assuming coordinates from timezone")

	return resolvedLocation{
		Lat:      fallback.Latitude,
		Lon:      fallback.Longitude,
		City:     fallback.City,
		Country:  fallback.Country,
		Timezone: fallback.Timezone,
		Assumed:  true,
	}
}

// fetchTimings returns prayer timings for the given date, trying the cache,
// then the API, then a local approximation. It never fails: a day view with
// rough times beats no day view.
func fetchTimings(date time.Time, loc resolvedLocation, method, school int, c *cache.Cache) *fetchResult {
	// Try cache first.
	if c != nil {
		if entry := c.LoadTimings(date, loc.Lat, loc.Lon, method, school); entry != nil {
			log.Debug().Str("date", date.Format("2006-01-02")).Msg("timings served from cache")
			return &fetchResult{
				Times:    schedule.FromTimings(entry.Timings),
				Meta:     entry.Meta,
				DateInfo: entry.DateInfo,
			}
		}
	}

	// Cache miss -- fetch from the API.
	client := api.NewClient()
	resp, err := client.FetchTimings(date, loc.Lat, loc.Lon, method, school)
	if err == nil {
		if c != nil {
			_ = c.SaveTimings(date, loc.Lat, loc.Lon, method, school, resp) // best-effort
		}
		return &fetchResult{
			Times:    schedule.FromTimings(resp.Data.Timings),
			Meta:     resp.Data.Meta,
			DateInfo: resp.Data.Date,
		}
	}

	// Provider unreachable: fall back to the local approximation.
	log.Warn().
		Err(err).
		Str("date", date.Format("2006-01-02")).
		Msg("prayer times provider unavailable, using approximate times")

	return &fetchResult{
		Times:       schedule.ApproxTimes(date, loc.Lat),
		Approximate: true,
	}
}

// hijriLabel formats the Hijri date for a Gregorian date.
// The override table wins over everything; after that, provider data already
// in hand; last, the local arithmetic conversion.
func hijriLabel(date time.Time, result *fetchResult) string {
	if d, ok := hijri.Overrides.Resolve(date); ok {
		return d.Format()
	}
	if result != nil {
		if s := result.DateInfo.Hijri.Format(); s != "" {
			return s
		}
	}
	return hijri.ToHijri(date).Format()
}
