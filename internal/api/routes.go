package api

import (
	"net/http"

	"waltgoat/walker-app/internal/service"
	"waltgoat/walker-app/internal/telemetry/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Services bundles what the handlers need.
type Services struct {
	Auth       service.AuthService
	Profile    service.ProfileService
	Sessions   service.SessionService
	Exercises  service.ExerciseService
	Plans      service.PlanService
	Stats      service.StatsService
	Challenges service.ChallengeService
}

// SetupRoutes registers every endpoint on router. Requests are counted in
// metricsManager and /metrics serves gatherer.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	services Services,
	metricsManager *metrics.Manager,
	gatherer prometheus.Gatherer,
) {
	authHandler := NewAuthHandler(services.Auth)
	profileHandler := NewProfileHandler(services.Profile)
	sessionHandler := NewSessionHandler(services.Sessions)
	exerciseHandler := NewExerciseHandler(services.Exercises)
	planHandler := NewPlanHandler(services.Plans)
	statsHandler := NewStatsHandler(services.Stats)
	challengeHandler := NewChallengeHandler(services.Challenges)

	router.Use(PanicRecovery(metricsManager), RequestMetrics(metricsManager), LogRequest())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		protected.GET("/me", profileHandler.Me)
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)

		// --- Session Log ---
		protected.GET("/walks", sessionHandler.ListWalks)
		protected.POST("/walks", sessionHandler.LogWalk)
		protected.GET("/walks/:walkId/track", sessionHandler.GetWalkTrack)
		protected.GET("/circuits", sessionHandler.ListCircuits)
		protected.POST("/circuits", sessionHandler.LogCircuit)

		// --- Exercise Catalog ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.ListExercises)
			exerciseGroup.GET("/categories", exerciseHandler.Categories)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
		}
		protected.GET("/elastici", exerciseHandler.Bands)

		// --- Plans ---
		planGroup := protected.Group("/plans")
		{
			planGroup.GET("", planHandler.ListPlans)
			planGroup.POST("", planHandler.CreatePlan)
			planGroup.GET("/active", planHandler.GetActivePlan)
			planGroup.POST("/generate", planHandler.GeneratePlan)
			planGroup.PUT("/:planId/exercise", planHandler.UpdateActivity)
			planGroup.PUT("/:planId/activate", planHandler.ActivatePlan)
		}

		protected.GET("/stats", statsHandler.GetStats)

		// --- Challenges ---
		challengeGroup := protected.Group("/sfide")
		{
			challengeGroup.GET("", challengeHandler.ListChallenges)
			challengeGroup.POST("/generate", challengeHandler.GenerateChallenges)
			challengeGroup.POST("/check-progress", challengeHandler.CheckProgress)
		}
	}
}
