package response_models

import "wanderguard/internal/guide"

type PlanListResponse struct {
	Plans []guide.TravelData `json:"plans"`
	Count int                `json:"count"`
}

// PlanSearchHit is one semantic search result with its cosine distance to the
// query embedding (smaller is closer).
type PlanSearchHit struct {
	Plan     guide.TravelData `json:"plan"`
	Distance float64          `json:"distance"`
}
