// ABOUTME: Router classifies a message's intent and dispatches to a handler
// ABOUTME: Fixed precedence: weather, then study planning, then retrieval
package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/study-concierge/internal/guard"
	"github.com/harper/study-concierge/internal/models"
	"github.com/harper/study-concierge/internal/weather"
)

// Answerer resolves a question against the indexed course materials.
type Answerer interface {
	Answer(ctx context.Context, question string) (string, error)
}

// WeatherExplainer produces a natural-language weather summary for a city.
type WeatherExplainer interface {
	Explain(ctx context.Context, city string) (string, error)
}

// Planner builds a deterministic study plan from a raw message.
type Planner interface {
	Plan(message string) string
}

// DefaultCity is used when a weather request names no recognized city.
const DefaultCity = "toronto"

// plannerTriggers route a message to the planner. Checked as substrings of
// the lowercased message, after the weather check.
var plannerTriggers = []string{"study plan", "study schedule", "plan my study"}

// Router dispatches chat messages after the guardrail filter clears them.
// All collaborators are injected at construction and reused for the life of
// the process.
type Router struct {
	filter          *guard.Filter
	answerer        Answerer
	planner         Planner
	weather         WeatherExplainer
	defaultCity     string
	maxHistoryTurns int
}

// New creates a Router. A nil filter gets the default guard rules; an empty
// defaultCity falls back to DefaultCity; maxHistoryTurns <= 0 falls back to
// models.DefaultMaxHistoryTurns.
func New(filter *guard.Filter, answerer Answerer, planner Planner, explainer WeatherExplainer, defaultCity string, maxHistoryTurns int) *Router {
	if filter == nil {
		filter = guard.NewFilter(nil)
	}
	if defaultCity == "" {
		defaultCity = DefaultCity
	}
	if maxHistoryTurns <= 0 {
		maxHistoryTurns = models.DefaultMaxHistoryTurns
	}
	return &Router{
		filter:          filter,
		answerer:        answerer,
		planner:         planner,
		weather:         explainer,
		defaultCity:     defaultCity,
		maxHistoryTurns: maxHistoryTurns,
	}
}

// extractCity scans the lowercased message for a known city key and returns
// the default city when none matches. Keys are lowercase, so the scan is
// case-insensitive against the already-lowercased message.
func (r *Router) extractCity(lower string) string {
	for _, city := range weather.SupportedCityKeys() {
		if strings.Contains(lower, city) {
			return city
		}
	}
	return r.defaultCity
}

// Route dispatches a message that already passed the guardrails. Precedence
// is fixed and first match wins: weather, then planner, then retrieval.
func (r *Router) Route(ctx context.Context, message string) (string, error) {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "weather") {
		reply, err := r.weather.Explain(ctx, r.extractCity(lower))
		if err != nil {
			return "", fmt.Errorf("weather lookup: %w", err)
		}
		return reply, nil
	}

	for _, trigger := range plannerTriggers {
		if strings.Contains(lower, trigger) {
			return r.planner.Plan(message), nil
		}
	}

	reply, err := r.answerer.Answer(ctx, message)
	if err != nil {
		return "", fmt.Errorf("answering from course materials: %w", err)
	}
	return reply, nil
}

// Handle runs one full message turn: guardrail checks, then routing, then
// history append and trim. Dispatch errors never escape; they become a
// generic error reply so the session keeps going.
func (r *Router) Handle(ctx context.Context, message string, history models.SessionHistory) (models.SessionHistory, string) {
	if refusal, blocked := r.filter.Check(message); blocked {
		history = history.Append(models.NewTurn(message, refusal)).Trim(r.maxHistoryTurns)
		return history, refusal
	}

	reply, err := r.Route(ctx, message)
	if err != nil {
		reply = fmt.Sprintf("Something went wrong while processing your request. Error: %v", err)
	}

	history = history.Append(models.NewTurn(message, reply)).Trim(r.maxHistoryTurns)
	return history, reply
}
