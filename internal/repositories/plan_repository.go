package repositories

import (
	"context"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"wanderguard/internal/models/db_models"
)

// PlanRepository persists the saved-plan collection with whole-collection
// semantics: Load reads the session's full ordered collection, Store rewrites
// it atomically. Every mutation upstream is a read-modify-write over these
// two, so concurrent writers cannot interleave partial updates.
type PlanRepository interface {
	Load(ctx context.Context, sessionID string) ([]db_models.SavedPlan, error)
	Store(ctx context.Context, sessionID string, plans []db_models.SavedPlan) error
	SearchByVector(ctx context.Context, sessionID string, vector pgvector.Vector, limit int) ([]db_models.SavedPlan, []float64, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Load(ctx context.Context, sessionID string) ([]db_models.SavedPlan, error) {
	var plans []db_models.SavedPlan
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position asc").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) Store(ctx context.Context, sessionID string, plans []db_models.SavedPlan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&db_models.SavedPlan{}).Error; err != nil {
			return err
		}
		if len(plans) == 0 {
			return nil
		}
		for i := range plans {
			plans[i].SessionID = sessionID
			plans[i].Position = i
		}
		return tx.Create(&plans).Error
	})
}

type planWithDistance struct {
	db_models.SavedPlan `gorm:"embedded"`
	Distance            float64
}

func (r *planRepository) SearchByVector(ctx context.Context, sessionID string, vector pgvector.Vector, limit int) ([]db_models.SavedPlan, []float64, error) {
	var rows []planWithDistance
	err := r.db.WithContext(ctx).
		Model(&db_models.SavedPlan{}).
		Select("*, embedding <=> ? AS distance", vector).
		Where("session_id = ?", sessionID).
		Order("distance asc").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, nil, err
	}

	plans := make([]db_models.SavedPlan, len(rows))
	distances := make([]float64, len(rows))
	for i, row := range rows {
		plans[i] = row.SavedPlan
		distances[i] = row.Distance
	}
	return plans, distances, nil
}
