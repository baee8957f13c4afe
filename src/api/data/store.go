package data

import (
	"gorm.io/gorm"

	"github.com/stake-plus/agenthub/src/api/types"
)

// Store wraps the DB with tenant-scoped operations. Every query
// carries the tenant id; nothing here can cross a tenant boundary.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Tools are always materialized in tool-id order so that prompt
// composition is deterministic for a given tool set.
func toolOrder(db *gorm.DB) *gorm.DB {
	return db.Order("tools.id")
}

func (s *Store) CreateTool(t *types.Tool) error {
	return s.db.Create(t).Error
}

func (s *Store) Tool(tenantID string, id uint64) (*types.Tool, error) {
	var t types.Tool
	if err := s.db.First(&t, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Tools lists a tenant's tools: name is a partial match, agentName an
// exact match against agents referencing the tool.
func (s *Store) Tools(tenantID, name, agentName string) ([]types.Tool, error) {
	q := s.db.Model(&types.Tool{}).Where("tools.tenant_id = ?", tenantID)
	if name != "" {
		q = q.Where("tools.name LIKE ?", "%"+name+"%")
	}
	if agentName != "" {
		// Joined listing selects tools.* only: the agent columns share
		// names (id, name) and must not leak into the scan.
		q = q.Joins("JOIN agent_tools ON agent_tools.tool_id = tools.id").
			Joins("JOIN agents ON agents.id = agent_tools.agent_id AND agents.tenant_id = ?", tenantID).
			Where("agents.name = ?", agentName).
			Distinct("tools.*")
	}
	var out []types.Tool
	err := toolOrder(q).Find(&out).Error
	return out, err
}

// ToolsByID resolves tool references for the tenant. Callers compare
// the result length against the requested ids to reject references
// to missing or foreign tools.
func (s *Store) ToolsByID(tenantID string, ids []uint64) ([]types.Tool, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []types.Tool
	err := toolOrder(s.db.Where("tenant_id = ? AND id IN ?", tenantID, ids)).Find(&out).Error
	return out, err
}

func (s *Store) UpdateTool(t *types.Tool) error {
	return s.db.Omit("Agents").Save(t).Error
}

// DeleteTool removes the tool and its agent associations. Agents
// referencing it stay untouched, as does execution history.
func (s *Store) DeleteTool(t *types.Tool) error {
	if err := s.db.Model(t).Association("Agents").Clear(); err != nil {
		return err
	}
	return s.db.Delete(t).Error
}

func (s *Store) CreateAgent(a *types.Agent) error {
	return s.db.Create(a).Error
}

// Agents lists a tenant's agents with tools preloaded. Name and role
// are partial matches, toolName an exact match on attached tools.
func (s *Store) Agents(tenantID, name, role, toolName string) ([]types.Agent, error) {
	q := s.db.Model(&types.Agent{}).
		Preload("Tools", toolOrder).
		Where("agents.tenant_id = ?", tenantID)
	if name != "" {
		q = q.Where("agents.name LIKE ?", "%"+name+"%")
	}
	if role != "" {
		q = q.Where("agents.role LIKE ?", "%"+role+"%")
	}
	if toolName != "" {
		q = q.Joins("JOIN agent_tools ON agent_tools.agent_id = agents.id").
			Joins("JOIN tools ON tools.id = agent_tools.tool_id AND tools.tenant_id = ?", tenantID).
			Where("tools.name = ?", toolName).
			Distinct("agents.*")
	}
	var out []types.Agent
	err := q.Order("agents.id").Find(&out).Error
	return out, err
}

// AgentWithTools returns the fully materialized agent. The engine
// depends on this, never on lazy relation loading.
func (s *Store) AgentWithTools(tenantID string, id uint64) (*types.Agent, error) {
	var a types.Agent
	err := s.db.Preload("Tools", toolOrder).
		First(&a, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) UpdateAgent(a *types.Agent) error {
	return s.db.Omit("Tools").Save(a).Error
}

// ReplaceAgentTools swaps the agent's tool set wholesale. Callers
// validate tenant ownership of the tools first via ToolsByID.
func (s *Store) ReplaceAgentTools(a *types.Agent, tools []types.Tool) error {
	if len(tools) == 0 {
		return s.db.Model(a).Association("Tools").Clear()
	}
	return s.db.Model(a).Association("Tools").Replace(&tools)
}

func (s *Store) DeleteAgent(a *types.Agent) error {
	if err := s.db.Model(a).Association("Tools").Clear(); err != nil {
		return err
	}
	return s.db.Delete(a).Error
}

func (s *Store) CreateExecution(e *types.AgentExecution) error {
	return s.db.Create(e).Error
}

// Executions pages through the tenant's history, oldest first.
func (s *Store) Executions(tenantID string, skip, limit int) ([]types.AgentExecution, error) {
	var out []types.AgentExecution
	err := s.db.Where("tenant_id = ?", tenantID).
		Order("id").Offset(skip).Limit(limit).Find(&out).Error
	return out, err
}
