package guide_fx

import (
	"go.uber.org/fx"

	"wanderguard/internal/guide"
	"wanderguard/internal/services"
	mem "wanderguard/pkg/memcache"
	"wanderguard/pkg/utils"
)

var Module = fx.Provide(provideRecentGuides, provideGuideService)

func provideRecentGuides() mem.RecentGuideStore {
	return mem.NewRecentGuides()
}

func provideGuideService(
	aiClient utils.GuideClientInterface,
	ids guide.IDGenerator,
	recentCache mem.RecentGuideStore,
) services.GuideServiceInterface {
	return services.NewGuideService(aiClient, ids, recentCache)
}
