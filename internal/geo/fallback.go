package geo

// timezoneCoords maps common IANA timezone names to representative city
// coordinates, for when geolocation is declined or unreachable.
var timezoneCoords = map[string]Location{
	"America/New_York":    {Latitude: 40.7128, Longitude: -74.0060, City: "New York", Timezone: "America/New_York"},
	"America/Los_Angeles": {Latitude: 34.0522, Longitude: -118.2437, City: "Los Angeles", Timezone: "America/Los_Angeles"},
	"Europe/London":       {Latitude: 51.5074, Longitude: -0.1278, City: "London", Timezone: "Europe/London"},
	"Asia/Dubai":          {Latitude: 25.2048, Longitude: 55.2708, City: "Dubai", Timezone: "Asia/Dubai"},
	"Asia/Karachi":        {Latitude: 24.8607, Longitude: 67.0011, City: "Karachi", Timezone: "Asia/Karachi"},
	"Asia/Kolkata":        {Latitude: 28.6139, Longitude: 77.2090, City: "Delhi", Timezone: "Asia/Kolkata"},
	"Asia/Singapore":      {Latitude: 1.3521, Longitude: 103.8198, City: "Singapore", Timezone: "Asia/Singapore"},
	"Asia/Riyadh":         {Latitude: 24.7136, Longitude: 46.6753, City: "Riyadh", Timezone: "Asia/Riyadh"},
	"Africa/Cairo":        {Latitude: 30.0444, Longitude: 31.2357, City: "Cairo", Timezone: "Africa/Cairo"},
	"Europe/Istanbul":     {Latitude: 41.0082, Longitude: 28.9784, City: "Istanbul", Timezone: "Europe/Istanbul"},
	"Asia/Jakarta":        {Latitude: -6.2088, Longitude: 106.8456, City: "Jakarta", Timezone: "Asia/Jakarta"},
}

// mecca is the last-resort default when the timezone is unknown.
var mecca = Location{Latitude: 21.4225, Longitude: 39.8262, City: "Mecca", Country: "Saudi Arabia", Timezone: "Asia/Riyadh"}

// DefaultCoordinates returns fallback coordinates for the given IANA
// timezone. Unknown or empty timezones default to Mecca.
func DefaultCoordinates(timezone string) Location {
	if loc, ok := timezoneCoords[timezone]; ok {
		return loc
	}
	return mecca
}
