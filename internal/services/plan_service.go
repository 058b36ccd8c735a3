package services

import (
	"context"
	"log"
	"strings"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"wanderguard/internal/guide"
	"wanderguard/internal/models/db_models"
	"wanderguard/internal/models/request_models"
	"wanderguard/internal/models/response_models"
	"wanderguard/internal/repositories"
	mem "wanderguard/pkg/memcache"
	"wanderguard/pkg/utils"
)

type PlanServiceInterface interface {
	ListPlans(ctx context.Context, sessionID string) (response_models.PlanListResponse, error)
	SavePlan(ctx context.Context, sessionID string, req request_models.SavePlanRequest) (guide.TravelData, error)
	RenamePlan(ctx context.Context, sessionID, planID, newName string) error
	DeletePlan(ctx context.Context, sessionID, planID string) error
	ClearPlans(ctx context.Context, sessionID string) error
	SearchPlans(ctx context.Context, sessionID, query string, limit int) ([]response_models.PlanSearchHit, error)
}

type PlanService struct {
	planRepo    repositories.PlanRepository
	embeddings  utils.EmbeddingClientInterface
	recentCache mem.RecentGuideStore
}

func NewPlanService(
	planRepo repositories.PlanRepository,
	embeddings utils.EmbeddingClientInterface,
	recentCache mem.RecentGuideStore,
) PlanServiceInterface {
	return &PlanService{
		planRepo:    planRepo,
		embeddings:  embeddings,
		recentCache: recentCache,
	}
}

func (p *PlanService) ListPlans(ctx context.Context, sessionID string) (response_models.PlanListResponse, error) {
	rows, err := p.planRepo.Load(ctx, sessionID)
	if err != nil {
		return response_models.PlanListResponse{}, utils.ErrDatabaseError
	}

	plans := make([]guide.TravelData, len(rows))
	for i := range rows {
		plans[i] = rows[i].ToTravelData()
	}
	return response_models.PlanListResponse{Plans: plans, Count: len(plans)}, nil
}

// SavePlan prepends the guide to the session's collection with a fresh
// timestamp and chosen name. Saving a guide whose id is already in the
// collection replaces the old entry, keeping plan ids unique. The whole
// collection is rewritten in one transaction.
func (p *PlanService) SavePlan(ctx context.Context, sessionID string, req request_models.SavePlanRequest) (guide.TravelData, error) {
	data, err := p.resolveGuide(sessionID, req)
	if err != nil {
		return guide.TravelData{}, err
	}

	data.CustomName = req.CustomName
	if data.CustomName == "" {
		data.CustomName = utils.DefaultPlanName(req.Destination, req.CheckIn, req.CheckOut)
	}
	data.CreatedAt = utils.NowUnixSeconds()

	existing, err := p.planRepo.Load(ctx, sessionID)
	if err != nil {
		return guide.TravelData{}, utils.ErrDatabaseError
	}

	collection := make([]db_models.SavedPlan, 0, len(existing)+1)
	collection = append(collection, p.toSavedPlan(ctx, sessionID, data, req.Destination))
	for _, row := range existing {
		if row.ID != data.ID {
			collection = append(collection, row)
		}
	}

	if err := p.planRepo.Store(ctx, sessionID, collection); err != nil {
		return guide.TravelData{}, utils.ErrDatabaseError
	}
	return data, nil
}

func (p *PlanService) RenamePlan(ctx context.Context, sessionID, planID, newName string) error {
	plans, err := p.planRepo.Load(ctx, sessionID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	found := false
	for i := range plans {
		if plans[i].ID == planID {
			plans[i].CustomName = newName
			found = true
		}
	}
	if !found {
		return utils.ErrPlanNotFound
	}

	if err := p.planRepo.Store(ctx, sessionID, plans); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) DeletePlan(ctx context.Context, sessionID, planID string) error {
	plans, err := p.planRepo.Load(ctx, sessionID)
	if err != nil {
		return utils.ErrDatabaseError
	}

	remaining := make([]db_models.SavedPlan, 0, len(plans))
	for _, plan := range plans {
		if plan.ID != planID {
			remaining = append(remaining, plan)
		}
	}
	if len(remaining) == len(plans) {
		return utils.ErrPlanNotFound
	}

	if err := p.planRepo.Store(ctx, sessionID, remaining); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) ClearPlans(ctx context.Context, sessionID string) error {
	if err := p.planRepo.Store(ctx, sessionID, nil); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (p *PlanService) SearchPlans(ctx context.Context, sessionID, query string, limit int) ([]response_models.PlanSearchHit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrEmptySearchQuery
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	vector, err := p.embeddings.GetEmbedding(ctx, query)
	if err != nil {
		return nil, utils.ErrGuideGeneration
	}

	rows, distances, err := p.planRepo.SearchByVector(ctx, sessionID, vector, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	hits := make([]response_models.PlanSearchHit, len(rows))
	for i := range rows {
		hits[i] = response_models.PlanSearchHit{
			Plan:     rows[i].ToTravelData(),
			Distance: distances[i],
		}
	}
	return hits, nil
}

// resolveGuide picks the guide to save: the one in the request, or the
// session's most recently generated one.
func (p *PlanService) resolveGuide(sessionID string, req request_models.SavePlanRequest) (guide.TravelData, error) {
	if req.Guide != nil {
		return *req.Guide, nil
	}
	cached, ok := p.recentCache.Get(sessionID)
	if !ok {
		return guide.TravelData{}, utils.ErrNoActiveGuide
	}
	return cached, nil
}

func (p *PlanService) toSavedPlan(ctx context.Context, sessionID string, data guide.TravelData, destination string) db_models.SavedPlan {
	row := db_models.SavedPlan{
		ID:              data.ID,
		SessionID:       sessionID,
		CustomName:      data.CustomName,
		Itinerary:       data.Itinerary,
		Accommodations:  data.Accommodations,
		Safety:          data.Safety,
		Health:          data.Health,
		Environmental:   data.Environmental,
		Tips:            data.Tips,
		Sources:         data.Sources,
		ParsedItinerary: data.ParsedItinerary,
		DestinationTags: destinationTags(destination, data.CustomName),
		CreatedAt:       data.CreatedAt,
	}
	row.Embedding = p.embedPlan(ctx, data)
	return row
}

// embedPlan is best-effort: a failed embedding never blocks a save, the plan
// just stays invisible to semantic search.
func (p *PlanService) embedPlan(ctx context.Context, data guide.TravelData) pgvector.Vector {
	excerpt := data.Itinerary
	if len(excerpt) > 2000 {
		excerpt = excerpt[:2000]
	}
	vector, err := p.embeddings.GetEmbedding(ctx, data.CustomName+"\n"+excerpt)
	if err != nil {
		log.Printf("Embedding failed for plan %s: %v", data.ID, err)
		return pgvector.NewVector(make([]float32, 1536))
	}
	return vector
}

func destinationTags(destination, customName string) pq.StringArray {
	var tags pq.StringArray
	seen := make(map[string]bool)
	for _, word := range strings.Fields(strings.ToLower(destination + " " + customName)) {
		word = strings.Trim(word, "(),.")
		if len(word) > 2 && !seen[word] {
			seen[word] = true
			tags = append(tags, word)
		}
	}
	return tags
}
