package services

import (
	"context"
	"errors"
	"testing"

	"github.com/pgvector/pgvector-go"

	"wanderguard/internal/guide"
	"wanderguard/internal/models/db_models"
	"wanderguard/internal/models/request_models"
	mem "wanderguard/pkg/memcache"
	"wanderguard/pkg/utils"
)

// fakePlanRepo keeps per-session collections in memory with the same
// whole-collection Load/Store contract as the postgres repository.
type fakePlanRepo struct {
	collections map[string][]db_models.SavedPlan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{collections: make(map[string][]db_models.SavedPlan)}
}

func (f *fakePlanRepo) Load(ctx context.Context, sessionID string) ([]db_models.SavedPlan, error) {
	return append([]db_models.SavedPlan(nil), f.collections[sessionID]...), nil
}

func (f *fakePlanRepo) Store(ctx context.Context, sessionID string, plans []db_models.SavedPlan) error {
	f.collections[sessionID] = append([]db_models.SavedPlan(nil), plans...)
	return nil
}

func (f *fakePlanRepo) SearchByVector(ctx context.Context, sessionID string, vector pgvector.Vector, limit int) ([]db_models.SavedPlan, []float64, error) {
	plans := f.collections[sessionID]
	if len(plans) > limit {
		plans = plans[:limit]
	}
	distances := make([]float64, len(plans))
	return plans, distances, nil
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector(make([]float32, 1536)), nil
}

func sampleGuide(id string) *guide.TravelData {
	return &guide.TravelData{
		ID:             id,
		Itinerary:      "ITINERARY\nDay 1\n- Walk\n",
		Accommodations: "FLIGHTS & ACCOMMODATIONS\nHotels\n",
		Safety:         guide.NotFound,
		Health:         guide.NotFound,
		Environmental:  guide.NotFound,
		Tips:           guide.NotFound,
	}
}

func newTestPlanService(repo *fakePlanRepo) (PlanServiceInterface, mem.RecentGuideStore) {
	cache := mem.NewRecentGuides()
	return NewPlanService(repo, &fakeEmbedder{}, cache), cache
}

func TestSavePlanPrependsNewestFirst(t *testing.T) {
	repo := newFakePlanRepo()
	svc, _ := newTestPlanService(repo)
	ctx := context.Background()

	if _, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{Guide: sampleGuide("p1"), CustomName: "First"}); err != nil {
		t.Fatalf("save p1: %v", err)
	}
	if _, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{Guide: sampleGuide("p2"), CustomName: "Second"}); err != nil {
		t.Fatalf("save p2: %v", err)
	}

	list, err := svc.ListPlans(ctx, "s1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Count != 2 || list.Plans[0].ID != "p2" || list.Plans[1].ID != "p1" {
		t.Errorf("collection order wrong: %+v", list.Plans)
	}
}

func TestSavePlanDefaultName(t *testing.T) {
	repo := newFakePlanRepo()
	svc, _ := newTestPlanService(repo)

	saved, err := svc.SavePlan(context.Background(), "s1", request_models.SavePlanRequest{
		Guide:       sampleGuide("p1"),
		Destination: "Tokyo",
		CheckIn:     "2026-09-01",
		CheckOut:    "2026-09-08",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.CustomName != "Tokyo Expedition (Sep 1 - Sep 8)" {
		t.Errorf("default name = %q", saved.CustomName)
	}
}

func TestSavePlanSameIDReplaces(t *testing.T) {
	repo := newFakePlanRepo()
	svc, _ := newTestPlanService(repo)
	ctx := context.Background()

	if _, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{Guide: sampleGuide("p1"), CustomName: "Old"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{Guide: sampleGuide("p1"), CustomName: "New"}); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	list, _ := svc.ListPlans(ctx, "s1")
	if list.Count != 1 {
		t.Fatalf("re-saving the same guide duplicated it: %d entries", list.Count)
	}
	if list.Plans[0].CustomName != "New" {
		t.Errorf("re-save should win, got name %q", list.Plans[0].CustomName)
	}
}

func TestSavePlanFromSessionCache(t *testing.T) {
	repo := newFakePlanRepo()
	svc, cache := newTestPlanService(repo)
	ctx := context.Background()

	if _, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{CustomName: "X"}); !errors.Is(err, utils.ErrNoActiveGuide) {
		t.Errorf("save without guide or cache = %v, want ErrNoActiveGuide", err)
	}

	cache.Set("s1", *sampleGuide("cached-1"), recentGuideTTL)
	saved, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{CustomName: "Cached trip"})
	if err != nil {
		t.Fatalf("save from cache: %v", err)
	}
	if saved.ID != "cached-1" {
		t.Errorf("saved id = %q, want the cached guide", saved.ID)
	}
}

func TestSavePlanSurvivesEmbeddingFailure(t *testing.T) {
	repo := newFakePlanRepo()
	cache := mem.NewRecentGuides()
	svc := NewPlanService(repo, &fakeEmbedder{err: errors.New("embedding down")}, cache)

	if _, err := svc.SavePlan(context.Background(), "s1", request_models.SavePlanRequest{Guide: sampleGuide("p1"), CustomName: "T"}); err != nil {
		t.Errorf("an embedding outage must not block saving: %v", err)
	}
}

func TestRenamePlan(t *testing.T) {
	repo := newFakePlanRepo()
	svc, _ := newTestPlanService(repo)
	ctx := context.Background()

	if _, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{Guide: sampleGuide("p1"), CustomName: "Old"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := svc.RenamePlan(ctx, "s1", "p1", "Renamed"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	list, _ := svc.ListPlans(ctx, "s1")
	if list.Plans[0].CustomName != "Renamed" {
		t.Errorf("name = %q", list.Plans[0].CustomName)
	}

	if err := svc.RenamePlan(ctx, "s1", "missing", "X"); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("rename missing = %v, want ErrPlanNotFound", err)
	}
}

func TestDeleteAndClearPlans(t *testing.T) {
	repo := newFakePlanRepo()
	svc, _ := newTestPlanService(repo)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		if _, err := svc.SavePlan(ctx, "s1", request_models.SavePlanRequest{Guide: sampleGuide(id), CustomName: id}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	if err := svc.DeletePlan(ctx, "s1", "p2"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	list, _ := svc.ListPlans(ctx, "s1")
	if list.Count != 2 {
		t.Errorf("count after delete = %d", list.Count)
	}
	for _, p := range list.Plans {
		if p.ID == "p2" {
			t.Errorf("p2 still present after delete")
		}
	}

	if err := svc.DeletePlan(ctx, "s1", "p2"); !errors.Is(err, utils.ErrPlanNotFound) {
		t.Errorf("double delete = %v, want ErrPlanNotFound", err)
	}

	if err := svc.ClearPlans(ctx, "s1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	list, _ = svc.ListPlans(ctx, "s1")
	if list.Count != 0 {
		t.Errorf("count after clear = %d", list.Count)
	}
}

func TestSearchPlansEmptyQuery(t *testing.T) {
	repo := newFakePlanRepo()
	svc, _ := newTestPlanService(repo)

	if _, err := svc.SearchPlans(context.Background(), "s1", "   ", 10); !errors.Is(err, utils.ErrEmptySearchQuery) {
		t.Errorf("got %v, want ErrEmptySearchQuery", err)
	}
}
