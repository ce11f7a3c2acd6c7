// Package cache provides file-based caching for prayer timings and the
// last-known geolocation, so repeated renders of the same day do not hit the
// network and the tracker keeps working offline.
package cache

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smokyabdulrahman/ramadan-tracker/internal/api"
	"github.com/smokyabdulrahman/ramadan-tracker/internal/geo"
)

const (
	timingsCacheFile = "timings_%s.json" // keyed by hash
	geoCacheFile     = "geolocation.json"
	geoTTL           = 24 * time.Hour
)

// Cache provides file-based caching rooted at a directory.
type Cache struct {
	dir string
}

// TimingsEntry stores a day's prayer times along with metadata for
// validation and the provider's date info, so a cached day also answers the
// Hijri label without a second call.
type TimingsEntry struct {
	Date     string       `json:"date"` // YYYY-MM-DD
	Method   int          `json:"method"`
	School   int          `json:"school"`
	Timings  api.Timings  `json:"timings"`
	DateInfo api.DateInfo `json:"date_info"`
	Meta     api.Meta     `json:"meta"`
}

// GeoEntry stores a cached geolocation result with a timestamp.
type GeoEntry struct {
	Location geo.Location `json:"location"`
	CachedAt time.Time    `json:"cached_at"`
}

// New creates a Cache rooted at the given directory.
// If dir is empty, it defaults to ~/.cache/ramadan-tracker/.
func New(dir string) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		dir = filepath.Join(home, ".cache", "ramadan-tracker")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create cache directory %s: %w", dir, err)
	}

	return &Cache{dir: dir}, nil
}

// cacheKey builds a deterministic hash from the parameters that affect
// prayer times, so different locations/methods/schools get separate files.
func cacheKey(date string, lat, lon float64, method, school int) string {
	raw := fmt.Sprintf("%s|%.6f|%.6f|%d|%d", date, lat, lon, method, school)
	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h[:8]) // 16 hex chars is plenty for uniqueness
}

// LoadTimings attempts to read cached prayer times for the given parameters.
// Returns nil if the cache is missing, malformed, or for a different date.
func (c *Cache) LoadTimings(date time.Time, lat, lon float64, method, school int) *TimingsEntry {
	dateStr := date.Format("2006-01-02")
	key := cacheKey(dateStr, lat, lon, method, school)
	path := filepath.Join(c.dir, fmt.Sprintf(timingsCacheFile, key))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry TimingsEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if entry.Date != dateStr {
		return nil
	}

	return &entry
}

// SaveTimings writes prayer times to the cache.
func (c *Cache) SaveTimings(date time.Time, lat, lon float64, method, school int, resp *api.Response) error {
	dateStr := date.Format("2006-01-02")
	key := cacheKey(dateStr, lat, lon, method, school)
	path := filepath.Join(c.dir, fmt.Sprintf(timingsCacheFile, key))

	entry := TimingsEntry{
		Date:     dateStr,
		Method:   method,
		School:   school,
		Timings:  resp.Data.Timings,
		DateInfo: resp.Data.Date,
		Meta:     resp.Data.Meta,
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// LoadGeo attempts to read the last-known coordinates.
// Returns nil if the cache is missing or older than the TTL (24 hours).
func (c *Cache) LoadGeo() *geo.Location {
	path := filepath.Join(c.dir, geoCacheFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var entry GeoEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil
	}

	if time.Since(entry.CachedAt) > geoTTL {
		return nil
	}

	return &entry.Location
}

// SaveGeo writes a geolocation result to the cache.
func (c *Cache) SaveGeo(loc *geo.Location) error {
	path := filepath.Join(c.dir, geoCacheFile)

	entry := GeoEntry{
		Location: *loc,
		CachedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal geo cache: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write geo cache: %w", err)
	}

	return nil
}
