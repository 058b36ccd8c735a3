package mem

import (
	"testing"
	"time"

	"wanderguard/internal/guide"
)

func TestRecentGuidesSetGet(t *testing.T) {
	store := NewRecentGuides()

	if _, ok := store.Get("s1"); ok {
		t.Errorf("empty store returned a guide")
	}

	store.Set("s1", guide.TravelData{ID: "g1"}, time.Minute)
	got, ok := store.Get("s1")
	if !ok || got.ID != "g1" {
		t.Errorf("got %+v ok=%v", got, ok)
	}

	store.Drop("s1")
	if _, ok := store.Get("s1"); ok {
		t.Errorf("guide survived Drop")
	}
}

func TestRecentGuidesExpiry(t *testing.T) {
	store := NewRecentGuides()
	store.Set("s1", guide.TravelData{ID: "g1"}, -time.Second)
	if _, ok := store.Get("s1"); ok {
		t.Errorf("expired guide should not be returned")
	}
}
