package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Locator resolves a client address to a city. The matchmaking core only
// ever sees the resulting city string.
type Locator interface {
	Locate(ctx context.Context, ip string) string
}

// LocationService resolves cities through the ipapi.co JSON endpoint. Any
// failure — network error, bad payload, or a city outside the supported
// set — falls back to the default city and is never surfaced to the caller.
type LocationService struct {
	Client      *http.Client
	BaseURL     string
	DefaultCity string

	supported map[string]struct{}
}

const defaultLocationAPIURL = "https://ipapi.co"

func NewLocationService(supportedCities []string, defaultCity, baseURL string) *LocationService {
	if baseURL == "" {
		baseURL = defaultLocationAPIURL
	}
	supported := make(map[string]struct{}, len(supportedCities))
	for _, city := range supportedCities {
		supported[strings.ToLower(city)] = struct{}{}
	}
	return &LocationService{
		Client:      &http.Client{Timeout: 3 * time.Second},
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		DefaultCity: defaultCity,
		supported:   supported,
	}
}

func (ls *LocationService) Locate(ctx context.Context, ip string) string {
	url := fmt.Sprintf("%s/%s/json/", ls.BaseURL, ip)
	if ip == "" {
		url = fmt.Sprintf("%s/json/", ls.BaseURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ls.DefaultCity
	}
	resp, err := ls.Client.Do(req)
	if err != nil {
		log.Printf("⚠️ Location lookup failed for %q: %v", ip, err)
		return ls.DefaultCity
	}
	defer resp.Body.Close()

	var payload struct {
		City string `json:"city"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("⚠️ Location lookup returned bad payload for %q: %v", ip, err)
		return ls.DefaultCity
	}

	city := strings.ToLower(payload.City)
	if _, ok := ls.supported[city]; ok {
		return city
	}
	return ls.DefaultCity
}
