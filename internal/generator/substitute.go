package generator

import (
	"strings"

	"github.com/Evaaaz/calendar-reminder-app/internal/models"
)

// Substitute replaces the fixed placeholder vocabulary in text with field
// values from the record. Replacement is literal, case-and-bracket-exact
// string replacement, not a pattern language: only the four known tokens are
// touched and anything else placeholder-shaped is left verbatim. Empty field
// values resolve to empty strings, never to the literal token.
func Substitute(text string, record models.DateRecord) string {
	if text == "" {
		return ""
	}

	replacements := [...]struct {
		token string
		value string
	}{
		{"{Event Name}", record.EventName},
		{"{Date}", record.Date}, // raw original string, not the parsed date
		{"{Person}", record.Person},
		{"{Notes}", record.Notes},
	}

	for _, r := range replacements {
		text = strings.ReplaceAll(text, r.token, r.value)
	}

	return text
}
