package response_models

import "wanderguard/internal/guide"

type ChecklistResponse struct {
	Days []guide.Day `json:"days"`
}

type FlightEditorResponse struct {
	Flights []guide.FlightEntry `json:"flights"`
}

type SaveFlightsResponse struct {
	Accommodations string `json:"accommodations"`
}

type RenderSectionResponse struct {
	Nodes []guide.DisplayNode `json:"nodes"`
}

type SessionResponse struct {
	Token string `json:"token"`
}
