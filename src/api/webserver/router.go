package webserver

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stake-plus/agenthub/src/api/auth"
	"github.com/stake-plus/agenthub/src/api/config"
	"github.com/stake-plus/agenthub/src/api/data"
	"github.com/stake-plus/agenthub/src/api/engine"
	"github.com/stake-plus/agenthub/src/api/ratelimit"
)

func attachRoutes(r *gin.Engine, cfg config.Config, db *gorm.DB, rdb *redis.Client) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-API-Key"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
	}))
	r.Use(requestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	store := data.NewStore(db)
	resolver := auth.ParseKeys(cfg.APIKeys)
	limiter := ratelimit.New(ratelimit.Rate, ratelimit.Window)
	eng := engine.New(store, limiter, engine.NewSimulator(), rdb)

	toolH := NewTools(store)
	agentH := NewAgents(store)
	runH := NewRun(eng)
	execH := NewExecutions(store)

	secured := r.Group("/", RequireTenant(resolver))
	{
		secured.POST("/tools/", toolH.Create)
		secured.GET("/tools/", toolH.List)
		secured.PUT("/tools/:id", toolH.Update)
		secured.DELETE("/tools/:id", toolH.Delete)

		secured.POST("/agents/", agentH.Create)
		secured.GET("/agents/", agentH.List)
		secured.GET("/agents/:id", agentH.Get)
		secured.PUT("/agents/:id", agentH.Update)
		secured.DELETE("/agents/:id", agentH.Delete)
		secured.POST("/agents/:id/run", runH.Execute)

		secured.GET("/executions/", execH.List)
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
