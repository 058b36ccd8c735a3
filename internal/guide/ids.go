package guide

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces unique strings for items and plans. It is injected so
// tests can supply a deterministic sequence instead of random UUIDs.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() IDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SequenceGenerator returns "id-1", "id-2", ... Used in tests.
type SequenceGenerator struct {
	counter atomic.Int64
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("id-%d", g.counter.Add(1))
}
