package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	config "github.com/Jigen0509/cheerain/config"
	controllers "github.com/Jigen0509/cheerain/controllers"
	repository "github.com/Jigen0509/cheerain/repository"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config) {
	cheerSrc := repository.NewCheerSource(cfg)
	athleteSrc := repository.NewAthleteSource(cfg)

	// health
	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := cfg.MongoClient.Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stats
	stats := r.Group("/stats")
	{
		stats.GET("/dashboard", controllers.DashboardStats(cheerSrc))
		stats.GET("/athletes", controllers.AthleteStats(cheerSrc))
		stats.GET("/methods", controllers.MethodStats(cheerSrc))
		stats.GET("/monthly", controllers.MonthlyStats(cheerSrc))
		stats.POST("/snapshot", controllers.ExportSnapshot(cheerSrc))
	}

	// Cheers (read-only)
	r.GET("/cheers", controllers.ListCheers(cheerSrc))

	// Athletes
	athletes := r.Group("/athletes")
	{
		athletes.GET("", controllers.ListAthletes(athleteSrc, cheerSrc))
		athletes.GET("/:id", controllers.GetAthlete(athleteSrc, cheerSrc))
	}
}
