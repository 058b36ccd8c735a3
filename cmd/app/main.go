package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wanderguard/cmd/fx/ai_fx"
	"wanderguard/cmd/fx/controllers_fx"
	"wanderguard/cmd/fx/db_fx"
	"wanderguard/cmd/fx/guide_fx"
	"wanderguard/cmd/fx/plans_fx"
	"wanderguard/internal/api/controllers"
	"wanderguard/internal/infra"
	"wanderguard/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		guide_fx.Module,
		plans_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	guideController *controllers.GuideController,
	plansController *controllers.PlansController,
	sessionController *controllers.SessionController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, guideController, plansController, sessionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	guideController *controllers.GuideController,
	plansController *controllers.PlansController,
	sessionController *controllers.SessionController) {

	r.POST("/session", sessionController.CreateSession)

	guides := r.Group("/guides")
	guides.Use(middleware.SessionMiddleware())
	guides.POST("/generate", guideController.GenerateGuide)
	guides.POST("/itinerary/parse", guideController.ParseItinerary)
	guides.POST("/checklist/update", guideController.UpdateChecklistItem)
	guides.POST("/checklist/add", guideController.AddChecklistItem)
	guides.POST("/checklist/delete", guideController.DeleteChecklistItem)
	guides.POST("/flights/open", guideController.OpenFlightEditor)
	guides.POST("/flights/save", guideController.SaveFlights)
	guides.POST("/render", guideController.RenderSection)

	plans := r.Group("/plans")
	plans.Use(middleware.SessionMiddleware())
	plans.GET("", plansController.ListPlans)
	plans.POST("", plansController.SavePlan)
	plans.GET("/search", plansController.SearchPlans)
	plans.PATCH("/:planId/name", plansController.RenamePlan)
	plans.DELETE("/:planId", plansController.DeletePlan)
	plans.DELETE("", plansController.ClearPlans)
}
