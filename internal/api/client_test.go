package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// sampleResponse returns a valid Al Adhan API response for testing.
func sampleResponse() Response {
	return Response{
		Code:   200,
		Status: "OK",
		Data: Data{
			Timings: Timings{
				Fajr:    "05:06",
				Sunrise: "06:29",
				Dhuhr:   "12:21",
				Asr:     "15:44",
				Sunset:  "18:14",
				Maghrib: "18:14",
				Isha:    "19:44",
				Imsak:   "04:56",
			},
			Date: DateInfo{
				Readable:  "01 Mar 2025",
				Timestamp: "1740787200",
				Hijri: HijriDate{
					Date:  "01-09-1446",
					Day:   "1",
					Month: HijriMonth{Number: 9, En: "Ramadan"},
					Year:  "1446",
				},
				Gregorian: GregorianDate{Date: "01-03-2025", Day: "1", Year: "2025"},
			},
			Meta: Meta{
				Latitude:  21.4225,
				Longitude: 39.8262,
				Timezone:  "Asia/Riyadh",
				Method:    MethodInfo{ID: 4, Name: "Umm Al-Qura University, Makkah"},
				School:    "STANDARD",
			},
		},
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient()
	if c == nil {
		t.Fatal("NewClient returned nil")
	}
	if c.BaseURL != defaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL, defaultBaseURL)
	}
}

func TestFetchTimings_Success(t *testing.T) {
	resp := sampleResponse()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify the request path contains /timings/ and date format DD-MM-YYYY.
		if !strings.Contains(r.URL.Path, "/timings/01-03-2025") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("latitude") == "" {
			t.Error("missing latitude param")
		}
		if q.Get("longitude") == "" {
			t.Error("missing longitude param")
		}
		if q.Get("method") != "4" {
			t.Errorf("method = %q, want %q", q.Get("method"), "4")
		}
		if q.Get("school") != "1" {
			t.Errorf("school = %q, want %q", q.Get("school"), "1")
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err := c.FetchTimings(date, 21.4225, 39.8262, 4, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Data.Timings.Fajr != "05:06" {
		t.Errorf("Fajr = %q, want %q", got.Data.Timings.Fajr, "05:06")
	}
	if got.Data.Date.Hijri.Month.En != "Ramadan" {
		t.Errorf("Hijri month = %q, want Ramadan", got.Data.Date.Hijri.Month.En)
	}
}

func TestFetchTimings_NoMethodOrSchool(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		// method=-1 and school=-1 should not be sent.
		if q.Get("method") != "" {
			t.Errorf("method should not be set, got %q", q.Get("method"))
		}
		if q.Get("school") != "" {
			t.Errorf("school should not be set, got %q", q.Get("school"))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(sampleResponse())
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	if _, err := c.FetchTimings(date, 21.4225, 39.8262, -1, -1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFetchTimings_Non200HTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	_, err := c.FetchTimings(time.Now(), 0, 0, -1, -1)
	if err == nil {
		t.Fatal("expected error for HTTP 500, got nil")
	}
}

func TestFetchTimings_APIErrorCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := sampleResponse()
		resp.Code = 400
		resp.Status = "Bad Request"
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	_, err := c.FetchTimings(time.Now(), 0, 0, -1, -1)
	if err == nil {
		t.Fatal("expected error for API code 400, got nil")
	}
}

func TestFetchTimings_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	_, err := c.FetchTimings(time.Now(), 0, 0, -1, -1)
	if err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestFetchTimings_Unreachable(t *testing.T) {
	c := NewClient()
	c.BaseURL = "http://127.0.0.1:1" // nothing listens here

	_, err := c.FetchTimings(time.Now(), 0, 0, -1, -1)
	if err == nil {
		t.Fatal("expected connection error, got nil")
	}
}

func TestFetchHijri_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/gToH") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("date") != "01-03-2025" {
			t.Errorf("date param = %q, want 01-03-2025", r.URL.Query().Get("date"))
		}
		json.NewEncoder(w).Encode(sampleResponse())
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	got, err := c.FetchHijri(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day != "1" || got.Month.En != "Ramadan" || got.Year != "1446" {
		t.Errorf("hijri = %+v, want 1 Ramadan 1446", got)
	}
}

func TestFetchRamadanCalendar_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "/hijriCalendar/1446/9") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		resp := CalendarResponse{Code: 200, Status: "OK"}
		for i := 0; i < 30; i++ {
			day := sampleResponse().Data
			resp.Data = append(resp.Data, day)
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	got, err := c.FetchRamadanCalendar(1446)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Data) != 30 {
		t.Errorf("calendar days = %d, want 30", len(got.Data))
	}
}

func TestFetchRamadanCalendar_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(CalendarResponse{Code: 200, Status: "OK"})
	}))
	defer server.Close()

	c := NewClient()
	c.BaseURL = server.URL

	if _, err := c.FetchRamadanCalendar(1446); err == nil {
		t.Fatal("expected error for empty calendar, got nil")
	}
}
