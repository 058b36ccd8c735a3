package guide

// GroundingSource is a citation attached to AI output. Passed through as-is.
type GroundingSource struct {
	Title string `json:"title,omitempty"`
	URI   string `json:"uri,omitempty"`
}

// Item is one editable checklist entry of an itinerary day.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Day is one day of the parsed itinerary. A day with a non-empty checklist is
// rendered as a checklist, otherwise its freeform content is shown. The two
// modes are mutually exclusive.
type Day struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Checklist []Item `json:"checklist"`
}

type DayMode string

const (
	DayModeChecklist DayMode = "checklist"
	DayModeFreeform  DayMode = "freeform"
)

func (d Day) RenderMode() DayMode {
	if len(d.Checklist) > 0 {
		return DayModeChecklist
	}
	return DayModeFreeform
}

// FlightEntry is one row of the airline comparison table. All fields are raw
// text as seen in the table; identity is positional within the edited list.
type FlightEntry struct {
	Airline  string `json:"airline"`
	Price    string `json:"price"`
	Duration string `json:"duration"`
	Transit  string `json:"transit"`
	Link     string `json:"link"`
}

// TravelData is one complete AI-derived guide: the six raw section texts, the
// grounding sources and the derived parsed itinerary. Until saved it is a
// detached in-session value; once saved the plan collection owns it.
type TravelData struct {
	ID              string            `json:"id"`
	CustomName      string            `json:"customName,omitempty"`
	Itinerary       string            `json:"itinerary"`
	Accommodations  string            `json:"accommodations"`
	Safety          string            `json:"safety"`
	Health          string            `json:"health"`
	Environmental   string            `json:"environmental"`
	Tips            string            `json:"tips"`
	Sources         []GroundingSource `json:"sources"`
	CreatedAt       int64             `json:"createdAt"`
	ParsedItinerary []Day             `json:"parsedItinerary,omitempty"`
}
