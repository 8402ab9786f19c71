// ABOUTME: Open-Meteo client and city table for the weather intent
// ABOUTME: Fetches current conditions and renders a natural-language summary
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

// DefaultBaseURL is the public Open-Meteo forecast endpoint (no API key).
const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// DefaultTimeout bounds every outbound weather call.
const DefaultTimeout = 5 * time.Second

// City is a supported location with precomputed coordinates.
type City struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Cities is the fixed set of supported cities, keyed by lowercase name.
var Cities = map[string]City{
	"toronto":   {Name: "Toronto", Latitude: 43.65107, Longitude: -79.347015},
	"vancouver": {Name: "Vancouver", Latitude: 49.2827, Longitude: -123.1207},
	"montreal":  {Name: "Montreal", Latitude: 45.5019, Longitude: -73.5674},
}

// SupportedCityNames returns the display names of the supported cities,
// sorted for stable messages.
func SupportedCityNames() []string {
	names := make([]string, 0, len(Cities))
	for _, c := range Cities {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}

// SupportedCityKeys returns the lowercase lookup keys of the supported
// cities, sorted. These are the tokens to scan user text against.
func SupportedCityKeys() []string {
	keys := make([]string, 0, len(Cities))
	for key := range Cities {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LookupCity resolves a city name case-insensitively.
func LookupCity(name string) (City, bool) {
	c, ok := Cities[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Conditions are the current conditions reported by the provider.
type Conditions struct {
	Temperature float64 `json:"temperature"`
	Windspeed   float64 `json:"windspeed"`
	WeatherCode int     `json:"weathercode"`
}

// forecastResponse mirrors the subset of the Open-Meteo payload we read.
type forecastResponse struct {
	CurrentWeather *Conditions `json:"current_weather"`
}

// Client calls the Open-Meteo forecast API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a weather client with the given call timeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithBaseURL creates a client against a custom endpoint (tests).
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	c := NewClient(timeout)
	c.baseURL = baseURL
	return c
}

// CurrentConditions fetches current weather for the coordinates.
func (c *Client) CurrentConditions(ctx context.Context, latitude, longitude float64) (*Conditions, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%g", latitude))
	query.Set("longitude", fmt.Sprintf("%g", longitude))
	query.Set("hourly", "temperature_2m")
	query.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling weather API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading weather response: %w", err)
	}

	var payload forecastResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parsing weather response: %w", err)
	}
	if payload.CurrentWeather == nil {
		return nil, nil
	}
	return payload.CurrentWeather, nil
}

// Service renders weather summaries for supported cities.
type Service struct {
	client *Client
}

// NewService creates a weather service over the client.
func NewService(client *Client) *Service {
	return &Service{client: client}
}

// Explain returns a natural-language weather summary for the named city.
// Unknown cities get a clarifying message naming the supported set, without
// calling the provider. A missing current-conditions payload is reported as
// its own fixed message.
func (s *Service) Explain(ctx context.Context, cityName string) (string, error) {
	city, ok := LookupCity(cityName)
	if !ok {
		return fmt.Sprintf(
			"I only know a few cities for weather right now (%s). "+
				"You asked for '%s', which I don't recognize.",
			strings.Join(SupportedCityNames(), ", "), cityName), nil
	}

	conditions, err := s.client.CurrentConditions(ctx, city.Latitude, city.Longitude)
	if err != nil {
		return "", err
	}
	if conditions == nil {
		return "The weather API did not return current conditions.", nil
	}

	return fmt.Sprintf(
		"In %s right now, it's about %.1f°C with a wind speed around %.1f km/h. %s",
		city.Name, conditions.Temperature, conditions.Windspeed,
		describeCode(conditions.WeatherCode)), nil
}

// describeCode maps WMO weather interpretation codes to a short description.
func describeCode(code int) string {
	var desc string
	switch {
	case code == 0:
		desc = "clear skies"
	case code <= 3:
		desc = "partly cloudy conditions"
	case code == 45 || code == 48:
		desc = "fog"
	case code >= 51 && code <= 57:
		desc = "drizzle"
	case code >= 61 && code <= 67:
		desc = "rain"
	case code >= 71 && code <= 77:
		desc = "snow"
	case code >= 80 && code <= 86:
		desc = "showers"
	case code >= 95:
		desc = "thunderstorms"
	default:
		desc = "mixed conditions"
	}
	return fmt.Sprintf("Weather code %d suggests %s.", code, desc)
}
