// ABOUTME: Tests for the Open-Meteo client and weather summaries
// ABOUTME: Uses httptest to fake the provider endpoint
package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func fakeProvider(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("current_weather") != "true" {
			t.Errorf("current_weather query param missing: %s", r.URL.RawQuery)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestLookupCity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{name: "lowercase", input: "toronto", want: "Toronto", ok: true},
		{name: "mixed case", input: "VanCouver", want: "Vancouver", ok: true},
		{name: "whitespace", input: " montreal ", want: "Montreal", ok: true},
		{name: "unknown", input: "winnipeg", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city, ok := LookupCity(tt.input)
			if ok != tt.ok {
				t.Fatalf("LookupCity(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && city.Name != tt.want {
				t.Errorf("city.Name = %q, want %q", city.Name, tt.want)
			}
		})
	}
}

func TestSupportedCityKeys(t *testing.T) {
	want := []string{"montreal", "toronto", "vancouver"}

	got := SupportedCityKeys()
	if len(got) != len(want) {
		t.Fatalf("len(keys) = %d, want %d", len(got), len(want))
	}
	for i, key := range want {
		if got[i] != key {
			t.Errorf("keys[%d] = %q, want %q", i, got[i], key)
		}
		if key != strings.ToLower(key) {
			t.Errorf("key %q is not lowercase", key)
		}
		if _, ok := LookupCity(got[i]); !ok {
			t.Errorf("key %q does not resolve via LookupCity", got[i])
		}
	}
}

func TestCurrentConditions(t *testing.T) {
	srv := fakeProvider(t, `{"current_weather": {"temperature": -3.5, "windspeed": 12.0, "weathercode": 71}}`, http.StatusOK)
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, time.Second)
	conditions, err := client.CurrentConditions(context.Background(), 43.65, -79.35)
	if err != nil {
		t.Fatalf("CurrentConditions() error = %v", err)
	}
	if conditions == nil {
		t.Fatal("conditions = nil, want payload")
	}
	if conditions.Temperature != -3.5 {
		t.Errorf("Temperature = %v, want -3.5", conditions.Temperature)
	}
	if conditions.Windspeed != 12.0 {
		t.Errorf("Windspeed = %v, want 12.0", conditions.Windspeed)
	}
	if conditions.WeatherCode != 71 {
		t.Errorf("WeatherCode = %d, want 71", conditions.WeatherCode)
	}
}

func TestCurrentConditions_MissingPayload(t *testing.T) {
	srv := fakeProvider(t, `{}`, http.StatusOK)
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, time.Second)
	conditions, err := client.CurrentConditions(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("CurrentConditions() error = %v", err)
	}
	if conditions != nil {
		t.Errorf("conditions = %+v, want nil", conditions)
	}
}

func TestCurrentConditions_ServerError(t *testing.T) {
	srv := fakeProvider(t, `boom`, http.StatusBadGateway)
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL, time.Second)
	if _, err := client.CurrentConditions(context.Background(), 0, 0); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestExplain(t *testing.T) {
	srv := fakeProvider(t, `{"current_weather": {"temperature": 21.0, "windspeed": 8.0, "weathercode": 0}}`, http.StatusOK)
	defer srv.Close()

	svc := NewService(NewClientWithBaseURL(srv.URL, time.Second))
	reply, err := svc.Explain(context.Background(), "vancouver")
	if err != nil {
		t.Fatalf("Explain() error = %v", err)
	}

	if !strings.Contains(reply, "In Vancouver right now") {
		t.Errorf("reply = %q, want Vancouver summary", reply)
	}
	if !strings.Contains(reply, "21.0°C") {
		t.Errorf("reply = %q, want temperature", reply)
	}
	if !strings.Contains(reply, "clear skies") {
		t.Errorf("reply = %q, want code description", reply)
	}
}

func TestExplain_UnknownCityDoesNotCallProvider(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewService(NewClientWithBaseURL(srv.URL, time.Second))
	reply, err := svc.Explain(context.Background(), "winnipeg")
	if err != nil {
		t.Fatalf("Explain() error = %v", err)
	}

	if called {
		t.Error("provider should not be called for an unknown city")
	}
	if !strings.Contains(reply, "Montreal, Toronto, Vancouver") {
		t.Errorf("reply = %q, want supported city names", reply)
	}
	if !strings.Contains(reply, "'winnipeg'") {
		t.Errorf("reply = %q, want the asked-for city echoed", reply)
	}
}

func TestExplain_NoCurrentConditions(t *testing.T) {
	srv := fakeProvider(t, `{}`, http.StatusOK)
	defer srv.Close()

	svc := NewService(NewClientWithBaseURL(srv.URL, time.Second))
	reply, err := svc.Explain(context.Background(), "toronto")
	if err != nil {
		t.Fatalf("Explain() error = %v", err)
	}
	if reply != "The weather API did not return current conditions." {
		t.Errorf("reply = %q", reply)
	}
}

func TestDescribeCode(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "clear skies"},
		{2, "partly cloudy"},
		{45, "fog"},
		{53, "drizzle"},
		{63, "rain"},
		{73, "snow"},
		{81, "showers"},
		{95, "thunderstorms"},
		{40, "mixed conditions"},
	}

	for _, tt := range tests {
		if got := describeCode(tt.code); !strings.Contains(got, tt.want) {
			t.Errorf("describeCode(%d) = %q, want substring %q", tt.code, got, tt.want)
		}
	}
}
