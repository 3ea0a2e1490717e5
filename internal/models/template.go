package models

// ReminderRule is one reminder slot within a template: a signed day offset
// relative to the record's base date (negative = before, zero = same day)
// plus title and description text with placeholders.
type ReminderRule struct {
	DaysOffset          int    `json:"days_offset"`
	TitleTemplate       string `json:"title_template"`
	DescriptionTemplate string `json:"description_template"`
}

// Template is one row from the templates table, keyed by Name. A category on
// a DateRecord matches at most one Template.
type Template struct {
	Name        string         `json:"template_name"`
	Description string         `json:"description,omitempty"` // informational only
	Reminders   []ReminderRule `json:"reminders"`
}
