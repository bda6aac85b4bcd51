package models

// ✅ Room statuses
const (
	RoomStatusOpen   = "open"
	RoomStatusClosed = "closed"
)

// ✅ Matchmaking defaults
const (
	DefaultMaxMatches     = 5
	DefaultPollIntervalMs = 2000
	DefaultCity           = "bangalore"
)

// DefaultSupportedCities is the city allowlist used when SUPPORTED_CITIES is unset
var DefaultSupportedCities = []string{"bangalore", "mumbai", "delhi", "chennai", "kolkata"}
