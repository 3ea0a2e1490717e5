package models

// DateRecord is one row from the important-dates table. All fields are kept
// as the raw strings the provider produced; Date in particular is never
// normalized here because the `{Date}` placeholder must render the original
// text.
type DateRecord struct {
	EventName  string `json:"event_name"`
	Date       string `json:"date"`
	Category   string `json:"category"`
	Person     string `json:"person,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Recurrence string `json:"recurrence,omitempty"` // informational only, never interpreted
}

// SheetData bundles the two record collections a data provider returns.
type SheetData struct {
	ImportantDates []DateRecord `json:"important_dates"`
	Templates      []Template   `json:"templates"`
}
