package engine

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stake-plus/agenthub/src/api/data"
	"github.com/stake-plus/agenthub/src/api/types"
)

const DefaultModel = "gpt-4o"

var SupportedModels = map[string]bool{
	"gpt-4o":   true,
	"gemini-3": true,
}

var (
	ErrUnsupportedModel = errors.New("unsupported model")
	ErrRateLimited      = errors.New("rate limit exceeded")
)

// Admitter gates the execution path per tenant.
type Admitter interface {
	Allow(tenantID string, now time.Time) bool
}

// Engine runs an agent: model check, admission, load, compose,
// simulate, persist. Each step is a possible exit and nothing is
// written before the simulated response exists.
type Engine struct {
	store   *data.Store
	limiter Admitter
	sim     *Simulator
	rdb     *redis.Client // optional event stream
	now     func() time.Time
}

func New(store *data.Store, limiter Admitter, sim *Simulator, rdb *redis.Client) *Engine {
	return &Engine{store: store, limiter: limiter, sim: sim, rdb: rdb, now: time.Now}
}

type Result struct {
	Agent       string `json:"agent"`
	FinalPrompt string `json:"final_prompt"`
	Response    string `json:"response"`
}

// Run executes the agent for the tenant. The validation order is a
// contract: an invalid model is reported before the rate limit is
// consulted and before the agent lookup, so a bad model on a missing
// agent fails for the model reason. Agent absence surfaces as
// gorm.ErrRecordNotFound.
func (e *Engine) Run(ctx context.Context, tenantID string, agentID uint64, task, model string) (*Result, error) {
	if model == "" {
		model = DefaultModel
	}
	if !SupportedModels[model] {
		return nil, ErrUnsupportedModel
	}

	if !e.limiter.Allow(tenantID, e.now()) {
		return nil, ErrRateLimited
	}

	agent, err := e.store.AgentWithTools(tenantID, agentID)
	if err != nil {
		return nil, err
	}

	toolNames := make([]string, 0, len(agent.Tools))
	for _, t := range agent.Tools {
		toolNames = append(toolNames, t.Name)
	}
	prompt := ComposePrompt(agent.Name, agent.Role, agent.Description, toolNames, task)

	response := e.sim.Complete(prompt, model)

	exec := &types.AgentExecution{
		TenantID:  tenantID,
		AgentID:   agent.ID,
		Prompt:    prompt,
		Model:     model,
		Response:  response,
		CreatedAt: e.now(),
	}
	if err := e.store.CreateExecution(exec); err != nil {
		return nil, err
	}

	if e.rdb != nil {
		if err := data.PublishExecution(ctx, e.rdb, exec); err != nil {
			log.Printf("publish execution %d: %v", exec.ID, err)
		}
	}

	return &Result{Agent: agent.Name, FinalPrompt: prompt, Response: response}, nil
}
