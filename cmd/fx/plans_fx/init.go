package plans_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderguard/internal/repositories"
	"wanderguard/internal/services"
	mem "wanderguard/pkg/memcache"
	"wanderguard/pkg/utils"
)

var Module = fx.Provide(providePlanRepo, providePlanService)

func providePlanRepo(db *gorm.DB) repositories.PlanRepository {
	return repositories.NewPlanRepository(db)
}

func providePlanService(
	planRepo repositories.PlanRepository,
	embeddings utils.EmbeddingClientInterface,
	recentCache mem.RecentGuideStore,
) services.PlanServiceInterface {
	return services.NewPlanService(planRepo, embeddings, recentCache)
}
