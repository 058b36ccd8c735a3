package request_models

import "wanderguard/internal/guide"

// SavePlanRequest saves a guide into the plan collection. When Guide is nil
// the most recently generated guide of the session is saved. When CustomName
// is empty a default "<Destination> Expedition (<dates>)" name is derived from
// the trip fields.
type SavePlanRequest struct {
	Guide       *guide.TravelData `json:"guide"`
	CustomName  string            `json:"custom_name"`
	Destination string            `json:"destination"`
	CheckIn     string            `json:"check_in"`
	CheckOut    string            `json:"check_out"`
}

type RenamePlanRequest struct {
	CustomName string `json:"custom_name" binding:"required"`
}
