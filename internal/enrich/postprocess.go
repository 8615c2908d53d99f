package enrich

import "strings"

const descriptionLabel = "Description: "

// Word budget for descriptions: responses get a little leeway over the
// prompted 30-word limit before truncation kicks in.
const (
	descriptionMaxWords  = 35
	descriptionKeepWords = 30
)

// cleanDescription normalizes a raw description completion: strips an
// optional leading "Description: " label (case-insensitive, once) and
// truncates over-long responses to the first 30 words plus an ellipsis.
func cleanDescription(raw string) string {
	s := strings.TrimSpace(raw)

	if len(s) >= len(descriptionLabel) && strings.EqualFold(s[:len(descriptionLabel)], descriptionLabel) {
		s = strings.TrimSpace(s[len(descriptionLabel):])
	}

	words := strings.Fields(s)
	if len(words) > descriptionMaxWords {
		s = strings.Join(words[:descriptionKeepWords], " ") + "..."
	}
	return s
}

// isKnownPlayerMode reports whether a response matches one of the three
// expected tokens. Non-conforming responses are stored anyway; this only
// gates a warning.
func isKnownPlayerMode(s string) bool {
	switch s {
	case "Singleplayer", "Multiplayer", "Both":
		return true
	}
	return false
}
