package request_models

import "wanderguard/internal/guide"

// GenerateGuideRequest carries the trip parameters the guide prompt is built
// from. Dates are "2006-01-02".
type GenerateGuideRequest struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination" binding:"required"`
	CheckIn      string `json:"check_in" binding:"required"`
	CheckOut     string `json:"check_out" binding:"required"`
	Currency     string `json:"currency" binding:"required,len=3"`
	Budget       string `json:"budget"`
	TravelerType string `json:"traveler_type"`
	Person       int    `json:"person" binding:"min=1"`
	PlanMode     string `json:"plan_mode" binding:"omitempty,oneof=fast detailed deep"`
}

type ParseItineraryRequest struct {
	Itinerary string `json:"itinerary"`
}

type RenderSectionRequest struct {
	Text string `json:"text"`
}

type UpdateChecklistItemRequest struct {
	Days      []guide.Day `json:"days" binding:"required"`
	DayID     string      `json:"day_id" binding:"required"`
	ItemID    string      `json:"item_id" binding:"required"`
	Text      *string     `json:"text"`
	Completed *bool       `json:"completed"`
}

type AddChecklistItemRequest struct {
	Days  []guide.Day `json:"days" binding:"required"`
	DayID string      `json:"day_id" binding:"required"`
}

type DeleteChecklistItemRequest struct {
	Days   []guide.Day `json:"days" binding:"required"`
	DayID  string      `json:"day_id" binding:"required"`
	ItemID string      `json:"item_id" binding:"required"`
}

type OpenFlightEditorRequest struct {
	Accommodations string `json:"accommodations"`
}

type SaveFlightsRequest struct {
	Accommodations string              `json:"accommodations"`
	Flights        []guide.FlightEntry `json:"flights" binding:"required"`
	Currency       string              `json:"currency" binding:"required,len=3"`
}
