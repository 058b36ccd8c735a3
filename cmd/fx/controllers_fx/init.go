package controllers_fx

import (
	"go.uber.org/fx"
	"wanderguard/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewGuideController),
	fx.Provide(controllers.NewPlansController),
	fx.Provide(controllers.NewSessionController))
