// ABOUTME: Guardrail filter blocking banned topics and prompt probing
// ABOUTME: Case-insensitive substring rules checked before any routing
package guard

import "strings"

// Category classifies a guardrail rule.
type Category string

const (
	CategoryBannedTopic Category = "banned_topic"
	CategoryPromptProbe Category = "prompt_probe"
)

// Rule is one ordered guardrail pattern. Patterns are matched as
// case-insensitive substrings of the user message.
type Rule struct {
	Pattern  string
	Category Category
}

// Refusal texts returned verbatim as the assistant reply.
const (
	BannedTopicRefusal = "I am not allowed to respond to that topic. " +
		"Please choose a different subject."
	PromptProbeRefusal = "My internal instructions (system prompt) are private and " +
		"cannot be revealed or modified. " +
		"Let's focus on your questions instead."
)

// DefaultRules returns the stock rule set. Banned-topic rules come first;
// the filter preserves that precedence when both categories would match.
func DefaultRules() []Rule {
	banned := []string{
		"cat", "cats",
		"dog", "dogs",
		"zodiac", "horoscope", "horoscopes",
		"taylor swift", "swiftie", "swifties",
	}
	probes := []string{
		"system prompt",
		"initial prompt",
		"ignore previous instructions",
		"developer message",
		"jailbreak",
	}

	rules := make([]Rule, 0, len(banned)+len(probes))
	for _, p := range banned {
		rules = append(rules, Rule{Pattern: p, Category: CategoryBannedTopic})
	}
	for _, p := range probes {
		rules = append(rules, Rule{Pattern: p, Category: CategoryPromptProbe})
	}
	return rules
}

// Filter inspects raw user text against an ordered rule list.
type Filter struct {
	rules []Rule
}

// NewFilter creates a filter over the given rules; nil means DefaultRules.
func NewFilter(rules []Rule) *Filter {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Filter{rules: rules}
}

// CheckBannedTopics returns a refusal if the message touches a banned topic.
func (f *Filter) CheckBannedTopics(message string) (string, bool) {
	if f.matches(message, CategoryBannedTopic) {
		return BannedTopicRefusal, true
	}
	return "", false
}

// CheckPromptProbing returns a refusal if the message probes for internal
// instructions.
func (f *Filter) CheckPromptProbing(message string) (string, bool) {
	if f.matches(message, CategoryPromptProbe) {
		return PromptProbeRefusal, true
	}
	return "", false
}

// Check runs both checks with banned topics taking strict precedence: when
// the banned check fires, the probing check is never evaluated.
func (f *Filter) Check(message string) (string, bool) {
	if refusal, ok := f.CheckBannedTopics(message); ok {
		return refusal, true
	}
	if refusal, ok := f.CheckPromptProbing(message); ok {
		return refusal, true
	}
	return "", false
}

func (f *Filter) matches(message string, category Category) bool {
	lower := strings.ToLower(message)
	for _, rule := range f.rules {
		if rule.Category != category {
			continue
		}
		if strings.Contains(lower, rule.Pattern) {
			return true
		}
	}
	return false
}
