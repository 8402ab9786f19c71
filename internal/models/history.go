// ABOUTME: SessionHistory is a bounded append-only log of conversation turns
// ABOUTME: Trimming drops oldest turns first, keeping the most recent window
package models

// DefaultMaxHistoryTurns is the default short-term memory window.
const DefaultMaxHistoryTurns = 8

// SessionHistory holds the ordered turns of one conversation. It is a value
// type: Append and Trim return a new history rather than mutating in place,
// so the session owns the only reference to each generation.
type SessionHistory struct {
	Turns []ConversationTurn `json:"turns"`
}

// Append returns a history with the turn added at the end.
func (h SessionHistory) Append(turn ConversationTurn) SessionHistory {
	turns := make([]ConversationTurn, 0, len(h.Turns)+1)
	turns = append(turns, h.Turns...)
	turns = append(turns, turn)
	return SessionHistory{Turns: turns}
}

// Trim returns a history containing at most maxTurns of the most recent
// turns. Older turns are dropped from the front; order is preserved.
func (h SessionHistory) Trim(maxTurns int) SessionHistory {
	if maxTurns <= 0 {
		return SessionHistory{}
	}
	if len(h.Turns) <= maxTurns {
		return h
	}
	turns := make([]ConversationTurn, maxTurns)
	copy(turns, h.Turns[len(h.Turns)-maxTurns:])
	return SessionHistory{Turns: turns}
}

// Len returns the number of turns in the history.
func (h SessionHistory) Len() int {
	return len(h.Turns)
}
