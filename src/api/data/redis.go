package data

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/stake-plus/agenthub/src/api/types"
)

const streamExecutions = "agenthub.executions"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// PublishExecution appends a finished execution to the event stream
// for downstream consumers (billing, audit). Fire-and-forget.
func PublishExecution(ctx context.Context, rdb *redis.Client, e *types.AgentExecution) error {
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: streamExecutions,
		Values: map[string]interface{}{
			"id":       e.ID,
			"tenant":   e.TenantID,
			"agent_id": e.AgentID,
			"model":    e.Model,
			"time":     e.CreatedAt.Unix(),
		},
	}).Result()
	return err
}
