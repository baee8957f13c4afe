package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/stake-plus/agenthub/src/api/config"
	"github.com/stake-plus/agenthub/src/api/data"
	"github.com/stake-plus/agenthub/src/api/types"
	"github.com/stake-plus/agenthub/src/api/webserver"
)

var allModels = []interface{}{
	&types.Tool{}, &types.Agent{}, &types.AgentExecution{},
}

func migrate(db *gorm.DB) {
	err := db.AutoMigrate(allModels...)
	if err == nil {
		return
	}

	log.Printf("auto-migrate failed (%v) - dropping & recreating schema", err)
	_ = db.Migrator().DropTable(
		"agent_executions", "agent_tools", "agents", "tools",
	)
	if err := db.AutoMigrate(allModels...); err != nil {
		log.Fatalf("migrate after drop: %v", err)
	}
}

func main() {
	cfg := config.Load()

	db := data.MustDB(cfg.DBDriver, cfg.DBDSN)
	migrate(db)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb = data.MustRedis(cfg.RedisURL)
	}

	router := webserver.New(cfg, db, rdb)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("AgentHub API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
