// ABOUTME: Planner builds deterministic study-session plans from chat messages
// ABOUTME: Parses a minute duration and a topic heuristically, no model call
package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/harper/study-concierge/internal/models"
)

const (
	// DefaultDurationMinutes applies when the message names no duration.
	DefaultDurationMinutes = 60

	// DefaultTopic applies when no topic heuristic matches.
	DefaultTopic = "the lab materials"
)

// durationPattern matches "40-minute", "40 minute", "40minute".
var durationPattern = regexp.MustCompile(`(\d+)\s*-?\s*minute`)

// topicKeywords are searched in order; the first match wins and its trailing
// text becomes the topic.
var topicKeywords = []string{"review the", "review", "study"}

// Planner generates study plans. It is stateless and fully deterministic.
type Planner struct{}

// New creates a Planner.
func New() *Planner {
	return &Planner{}
}

// ExtractDuration parses the session length in minutes from the message,
// falling back to the default when absent.
func (p *Planner) ExtractDuration(message string) int {
	m := durationPattern.FindStringSubmatch(strings.ToLower(message))
	if m == nil {
		return DefaultDurationMinutes
	}
	minutes, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultDurationMinutes
	}
	return minutes
}

// ExtractTopic finds the study topic via ordered keyword search. The text
// after the first matching keyword, trimmed of surrounding whitespace and
// trailing punctuation, becomes the topic.
func (p *Planner) ExtractTopic(message string) string {
	text := strings.ToLower(message)
	for _, keyword := range topicKeywords {
		idx := strings.Index(text, keyword)
		if idx < 0 {
			continue
		}
		topic := strings.Trim(text[idx+len(keyword):], " ?.")
		if topic == "" {
			return DefaultTopic
		}
		return topic
	}
	return DefaultTopic
}

// BuildPlan computes the structured plan for a message.
func (p *Planner) BuildPlan(message string) models.StudyPlan {
	return models.NewStudyPlan(p.ExtractTopic(message), p.ExtractDuration(message))
}

// Plan builds and renders a plan as the assistant reply: a header line plus
// one line per block with the minutes rounded down for display.
func (p *Planner) Plan(message string) string {
	plan := p.BuildPlan(message)

	lines := make([]string, 0, len(plan.Blocks)+1)
	lines = append(lines, fmt.Sprintf("Here's a %d minute study plan:", plan.DurationMinutes))
	for _, block := range plan.Blocks {
		lines = append(lines, fmt.Sprintf("- Block %d (%d min): %s",
			block.BlockNumber, int(block.MinutesPerBlock), block.FocusLabel))
	}
	return strings.Join(lines, "\n")
}
