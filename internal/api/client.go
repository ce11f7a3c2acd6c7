// Package api talks to the Al Adhan service: daily prayer timings, the
// Gregorian-to-Hijri conversion endpoint, and the Ramadan month calendar.
// Every call can fail; callers are expected to degrade to cached or locally
// synthesized data rather than surface provider errors to the user.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.aladhan.com/v1"

// Client communicates with the Al Adhan API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL. Defaults to the Al Adhan API.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a new API client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: defaultBaseURL,
	}
}

// FetchTimings fetches prayer times for the given date and coordinates.
// method selects the calculation authority and school the Asr convention
// (0=Shafi, 1=Hanafi); pass -1 to let the API choose.
func (c *Client) FetchTimings(date time.Time, lat, lon float64, method, school int) (*Response, error) {
	dateStr := date.Format("02-01-2006")
	endpoint := fmt.Sprintf("%s/timings/%s", c.BaseURL, dateStr)

	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", lat))
	params.Set("longitude", fmt.Sprintf("%f", lon))
	if method >= 0 {
		params.Set("method", fmt.Sprintf("%d", method))
	}
	if school >= 0 {
		params.Set("school", fmt.Sprintf("%d", school))
	}

	var resp Response
	if err := c.doRequest(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp, nil
}

// FetchHijri converts a Gregorian date via the gToH endpoint and returns the
// provider's Hijri representation.
func (c *Client) FetchHijri(date time.Time) (*HijriDate, error) {
	endpoint := fmt.Sprintf("%s/gToH", c.BaseURL)

	params := url.Values{}
	params.Set("date", date.Format("02-01-2006"))

	var resp Response
	if err := c.doRequest(endpoint, params, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	return &resp.Data.Date.Hijri, nil
}

// FetchRamadanCalendar fetches the day-by-day Gregorian mapping of Ramadan
// (month 9) for the given Hijri year.
func (c *Client) FetchRamadanCalendar(hijriYear int) (*CalendarResponse, error) {
	endpoint := fmt.Sprintf("%s/hijriCalendar/%d/9", c.BaseURL, hijriYear)

	var resp CalendarResponse
	if err := c.doRequest(endpoint, url.Values{}, &resp); err != nil {
		return nil, err
	}
	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("API error: code=%d status=%s", resp.Code, resp.Status)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("API returned empty calendar for %d/9", hijriYear)
	}
	return &resp, nil
}

func (c *Client) doRequest(endpoint string, params url.Values, out any) error {
	reqURL := endpoint
	if len(params) > 0 {
		reqURL = fmt.Sprintf("%s?%s", endpoint, params.Encode())
	}

	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}

	return nil
}
