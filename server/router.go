package server

import (
	"net/http"
	"time"

	httpHandler "jarayid-admin/interfaces/http"
	"jarayid-admin/interfaces/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitiateRouter(
	bulletinHandler httpHandler.IBulletinHandler,
	sourceHandler httpHandler.ISourceHandler,
	schedulerHandler httpHandler.ISchedulerHandler,
	sponsorHandler httpHandler.ISponsorHandler,
	configurationHandler httpHandler.IConfigurationHandler,
	referenceHandler httpHandler.IReferenceHandler,
	auditHandler httpHandler.IAuditHandler,
	defaultOperator string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://localhost:3000", "http://localhost:4200"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Operator", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("api")
	api.Use(middleware.Operator(defaultOperator))

	bulletins := api.Group("/bulletins")
	{
		bulletins.GET("", bulletinHandler.GetBulletins)
		bulletins.POST("/:id/approve", bulletinHandler.Approve)
		bulletins.POST("/:id/reject", bulletinHandler.Reject)
		bulletins.POST("/:id/generate-video", bulletinHandler.GenerateVideo)
	}

	countries := api.Group("/countries")
	{
		countries.GET("", sourceHandler.GetCountries)
		countries.POST("/:countryId/toggle", sourceHandler.ToggleCountry)
		countries.GET("/:countryId/sources", sourceHandler.GetSources)
		countries.POST("/:countryId/sources/:sourceId/toggle", sourceHandler.ToggleSource)
		countries.PUT("/:countryId/sources", sourceHandler.SaveSources)
	}

	schedulers := api.Group("/schedulers")
	{
		schedulers.GET("", schedulerHandler.GetSchedulers)
		schedulers.GET("/active", schedulerHandler.GetActiveSchedulers)
		schedulers.POST("/:countryId/toggle", schedulerHandler.ToggleSchedule)
		schedulers.PUT("", schedulerHandler.SaveScheduler)
	}

	sponsors := api.Group("/sponsors")
	{
		sponsors.GET("", sponsorHandler.GetSponsors)
		sponsors.GET("/active", sponsorHandler.GetActiveSponsors)
		sponsors.POST("", sponsorHandler.CreateSponsor)
		sponsors.PUT("/:id", sponsorHandler.UpdateSponsor)
	}

	joiningWords := api.Group("/joining-words")
	{
		joiningWords.GET("", configurationHandler.GetJoiningWords)
		joiningWords.GET("/active", configurationHandler.GetActiveJoiningWords)
		joiningWords.POST("", configurationHandler.CreateJoiningWord)
		joiningWords.PUT("/:id", configurationHandler.UpdateJoiningWord)
		joiningWords.PATCH("/:id/status", configurationHandler.ToggleJoiningWord)
	}

	configurations := api.Group("/script-configurations")
	{
		configurations.GET("", configurationHandler.GetConfigurations)
		configurations.POST("", configurationHandler.CreateConfiguration)
		configurations.PUT("/:id", configurationHandler.UpdateConfiguration)
		configurations.PATCH("/:id/status", configurationHandler.ToggleConfiguration)
	}

	api.GET("/reference/categories", referenceHandler.GetCategories)

	// Audit trail requires PostgreSQL; the endpoint is absent without it.
	if auditHandler != nil {
		api.GET("/audit/actions", auditHandler.GetRecentActions)
	}

	return router
}
