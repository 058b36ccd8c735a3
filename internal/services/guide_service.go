package services

import (
	"context"
	"fmt"
	"time"

	"wanderguard/internal/guide"
	"wanderguard/internal/models/request_models"
	mem "wanderguard/pkg/memcache"
	"wanderguard/pkg/utils"
)

type GuideServiceInterface interface {
	GenerateGuide(ctx context.Context, sessionID string, params request_models.GenerateGuideRequest) (guide.TravelData, error)
	ParseItinerary(text string) []guide.Day
	UpdateChecklistItem(days []guide.Day, dayID, itemID string, patch guide.ItemPatch) []guide.Day
	AddChecklistItem(days []guide.Day, dayID string) []guide.Day
	DeleteChecklistItem(days []guide.Day, dayID, itemID string) []guide.Day
	OpenFlightEditor(accommodations string) []guide.FlightEntry
	SaveFlights(sessionID, accommodations string, flights []guide.FlightEntry, currency string) string
	RenderSection(text string) []guide.DisplayNode
}

// recentGuideTTL bounds how long an unsaved guide stays addressable through
// the save-current-guide path.
const recentGuideTTL = 24 * time.Hour

type GuideService struct {
	aiClient    utils.GuideClientInterface
	ids         guide.IDGenerator
	recentCache mem.RecentGuideStore
}

func NewGuideService(
	aiClient utils.GuideClientInterface,
	ids guide.IDGenerator,
	recentCache mem.RecentGuideStore,
) GuideServiceInterface {
	return &GuideService{
		aiClient:    aiClient,
		ids:         ids,
		recentCache: recentCache,
	}
}

// GenerateGuide runs the full pipeline: AI call, section split, itinerary
// parse. The result is cached per session so a later save can pick it up.
func (g *GuideService) GenerateGuide(ctx context.Context, sessionID string, params request_models.GenerateGuideRequest) (guide.TravelData, error) {
	text, sources, err := g.aiClient.GenerateGuide(ctx, params)
	if err != nil {
		return guide.TravelData{}, fmt.Errorf("%w: %v", utils.ErrGuideGeneration, err)
	}

	sections := guide.SplitSections(text)
	if sources == nil {
		sources = []guide.GroundingSource{}
	}

	data := guide.TravelData{
		ID:              g.ids.NewID(),
		Itinerary:       sections.Itinerary,
		Accommodations:  sections.Accommodations,
		Safety:          sections.Safety,
		Health:          sections.Health,
		Environmental:   sections.Environmental,
		Tips:            sections.Tips,
		Sources:         sources,
		CreatedAt:       utils.NowUnixSeconds(),
		ParsedItinerary: guide.ParseItinerary(sections.Itinerary, g.ids),
	}

	g.recentCache.Set(sessionID, data, recentGuideTTL)
	return data, nil
}

func (g *GuideService) ParseItinerary(text string) []guide.Day {
	return guide.ParseItinerary(text, g.ids)
}

func (g *GuideService) UpdateChecklistItem(days []guide.Day, dayID, itemID string, patch guide.ItemPatch) []guide.Day {
	return guide.UpdateItem(days, dayID, itemID, patch)
}

func (g *GuideService) AddChecklistItem(days []guide.Day, dayID string) []guide.Day {
	return guide.AddItem(days, dayID, g.ids)
}

func (g *GuideService) DeleteChecklistItem(days []guide.Day, dayID, itemID string) []guide.Day {
	return guide.DeleteItem(days, dayID, itemID)
}

// OpenFlightEditor decodes the accommodations table for editing. An editor
// never opens with zero rows: when nothing decodes, one blank row is offered.
func (g *GuideService) OpenFlightEditor(accommodations string) []guide.FlightEntry {
	entries := guide.ParseFlightTable(accommodations)
	if len(entries) == 0 {
		return []guide.FlightEntry{{}}
	}
	return entries
}

// SaveFlights re-embeds the edited table and refreshes the cached guide's
// accommodations text when the session still has one.
func (g *GuideService) SaveFlights(sessionID, accommodations string, flights []guide.FlightEntry, currency string) string {
	updated := guide.EmbedFlightTable(accommodations, flights, currency)

	if cached, ok := g.recentCache.Get(sessionID); ok {
		cached.Accommodations = updated
		g.recentCache.Set(sessionID, cached, recentGuideTTL)
	}
	return updated
}

func (g *GuideService) RenderSection(text string) []guide.DisplayNode {
	return guide.RenderSection(text)
}
