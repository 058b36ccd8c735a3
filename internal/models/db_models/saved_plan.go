package db_models

import (
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"wanderguard/internal/guide"
)

// SavedPlan is one persisted travel guide. The whole per-session collection is
// rewritten on every mutation; Position records the collection order
// (most-recently-saved first) independently of timestamps.
type SavedPlan struct {
	ID        string `gorm:"primaryKey"`
	SessionID string `gorm:"index"`
	Position  int

	CustomName     string
	Itinerary      string
	Accommodations string
	Safety         string
	Health         string
	Environmental  string
	Tips           string

	Sources         []guide.GroundingSource `gorm:"serializer:json"`
	ParsedItinerary []guide.Day             `gorm:"serializer:json"`

	DestinationTags pq.StringArray  `gorm:"type:text[]"`
	Embedding       pgvector.Vector `gorm:"type:vector(1536)"`

	CreatedAt int64
}

// ToTravelData converts the stored row back into the guide bundle.
func (p *SavedPlan) ToTravelData() guide.TravelData {
	return guide.TravelData{
		ID:              p.ID,
		CustomName:      p.CustomName,
		Itinerary:       p.Itinerary,
		Accommodations:  p.Accommodations,
		Safety:          p.Safety,
		Health:          p.Health,
		Environmental:   p.Environmental,
		Tips:            p.Tips,
		Sources:         p.Sources,
		CreatedAt:       p.CreatedAt,
		ParsedItinerary: p.ParsedItinerary,
	}
}
