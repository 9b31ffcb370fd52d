// Package tag parses and builds the structured tags that prefix
// narrator messages, used to route game flow between agents.
//
// A tagged message starts with [TAG] or [TAG:value] followed by the
// content:
//
//	[TURN:thokk] Thokk, it's your turn!
//	[NARRATION] The cave grows darker...
//	[COMBAT:hit] The arrow strikes true!
//	[PROMPT] What do you do?
package tag

import (
	"fmt"
	"regexp"
)

// Well-known tag names.
const (
	Turn      = "TURN"
	Narration = "NARRATION"
	Combat    = "COMBAT"
	Info      = "INFO"
	Prompt    = "PROMPT"
)

// pattern matches [TAG] or [TAG:value] at the start of a message. The
// value may not contain a closing bracket; the content is everything
// after the tag, newlines included.
var pattern = regexp.MustCompile(`(?s)^\[(\w+)(?::([^\]]+))?\]\s*(.*)$`)

// Message is a message split into its tag and content. An untagged
// message has an empty Name and the full text as Content.
type Message struct {
	Name    string
	Value   string
	Content string
}

// Tagged reports whether the message carried a leading tag.
func (m Message) Tagged() bool { return m.Name != "" }

// Parse splits a message into tag name, optional value, and content.
// Messages without a leading tag come back whole as Content.
func Parse(message string) Message {
	match := pattern.FindStringSubmatch(message)
	if match == nil {
		return Message{Content: message}
	}
	return Message{Name: match[1], Value: match[2], Content: match[3]}
}

// Format builds a tagged message. An empty value produces the short
// [TAG] form.
func Format(name, value, content string) string {
	if value != "" {
		return fmt.Sprintf("[%s:%s] %s", name, value, content)
	}
	return fmt.Sprintf("[%s] %s", name, content)
}

// StripForDisplay removes the leading tag for human-readable output.
func StripForDisplay(message string) string {
	return Parse(message).Content
}

// IsTurn reports whether the message is a turn handoff.
func IsTurn(message string) bool {
	return Parse(message).Name == Turn
}

// TurnTarget returns the agent id a TURN tag addresses, or "" when the
// message is not a turn handoff.
func TurnTarget(message string) string {
	parsed := Parse(message)
	if parsed.Name != Turn {
		return ""
	}
	return parsed.Value
}

// IsNarration reports whether the message is narration, which expects
// no response.
func IsNarration(message string) bool {
	return Parse(message).Name == Narration
}

// IsPrompt reports whether the message asks for input.
func IsPrompt(message string) bool {
	return Parse(message).Name == Prompt
}

// CombatResult reports whether the message is a combat result and, if
// so, the result kind ("hit", "miss", "crit", "init").
func CombatResult(message string) (bool, string) {
	parsed := Parse(message)
	if parsed.Name != Combat {
		return false, ""
	}
	return true, parsed.Value
}
