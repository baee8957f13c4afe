package data_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stake-plus/agenthub/src/api/data"
	"github.com/stake-plus/agenthub/src/api/types"
)

func testStore(t *testing.T) *data.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&types.Tool{}, &types.Agent{}, &types.AgentExecution{}))
	return data.NewStore(db)
}

func mkTool(t *testing.T, s *data.Store, tenant, name string) *types.Tool {
	t.Helper()
	tool := &types.Tool{TenantID: tenant, Name: name, Description: name + " tool"}
	require.NoError(t, s.CreateTool(tool))
	return tool
}

func mkAgent(t *testing.T, s *data.Store, tenant, name, role string, tools ...types.Tool) *types.Agent {
	t.Helper()
	agent := &types.Agent{TenantID: tenant, Name: name, Role: role, Description: "desc", Tools: tools}
	require.NoError(t, s.CreateAgent(agent))
	return agent
}

func TestToolListFilters(t *testing.T) {
	s := testStore(t)
	search := mkTool(t, s, "tenant-1", "Search")
	mkTool(t, s, "tenant-1", "Calculator")
	mkTool(t, s, "tenant-2", "Search")
	mkAgent(t, s, "tenant-1", "Researcher", "Analyst", *search)

	tools, err := s.Tools("tenant-1", "", "")
	require.NoError(t, err)
	assert.Len(t, tools, 2, "listing is tenant scoped")

	tools, err = s.Tools("tenant-1", "earc", "")
	require.NoError(t, err)
	require.Len(t, tools, 1, "name filter is a partial match")
	assert.Equal(t, "Search", tools[0].Name)

	tools, err = s.Tools("tenant-1", "", "Researcher")
	require.NoError(t, err)
	require.Len(t, tools, 1, "agent_name filter is exact")
	assert.Equal(t, search.ID, tools[0].ID)

	tools, err = s.Tools("tenant-1", "", "Research")
	require.NoError(t, err)
	assert.Empty(t, tools, "partial agent name must not match")
}

func TestToolsByIDScopedToTenant(t *testing.T) {
	s := testStore(t)
	mine := mkTool(t, s, "tenant-1", "Search")
	other := mkTool(t, s, "tenant-2", "Browser")

	tools, err := s.ToolsByID("tenant-1", []uint64{mine.ID, other.ID})
	require.NoError(t, err)
	assert.Len(t, tools, 1, "foreign tool ids must not resolve")
}

func TestAgentListFilters(t *testing.T) {
	s := testStore(t)
	search := mkTool(t, s, "tenant-1", "Search")
	mkAgent(t, s, "tenant-1", "Researcher", "Analyst", *search)
	mkAgent(t, s, "tenant-1", "Writer", "Author")
	mkAgent(t, s, "tenant-2", "Researcher", "Analyst")

	agents, err := s.Agents("tenant-1", "", "", "")
	require.NoError(t, err)
	assert.Len(t, agents, 2)

	agents, err = s.Agents("tenant-1", "searc", "", "")
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "Researcher", agents[0].Name)

	agents, err = s.Agents("tenant-1", "", "Anal", "")
	require.NoError(t, err)
	assert.Len(t, agents, 1)

	agents, err = s.Agents("tenant-1", "", "", "Search")
	require.NoError(t, err)
	require.Len(t, agents, 1)
	require.Len(t, agents[0].Tools, 1, "tools are preloaded")
	assert.Equal(t, "Search", agents[0].Tools[0].Name)
}

func TestAgentWithToolsCrossTenant(t *testing.T) {
	s := testStore(t)
	agent := mkAgent(t, s, "tenant-1", "Researcher", "Analyst")

	_, err := s.AgentWithTools("tenant-2", agent.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteToolDetachesAgents(t *testing.T) {
	s := testStore(t)
	search := mkTool(t, s, "tenant-1", "Search")
	agent := mkAgent(t, s, "tenant-1", "Researcher", "Analyst", *search)

	exec := &types.AgentExecution{
		TenantID: "tenant-1", AgentID: agent.ID,
		Prompt: "p", Model: "gpt-4o", Response: "r", CreatedAt: time.Now(),
	}
	require.NoError(t, s.CreateExecution(exec))

	require.NoError(t, s.DeleteTool(search))

	got, err := s.AgentWithTools("tenant-1", agent.ID)
	require.NoError(t, err, "agent survives tool deletion")
	assert.Empty(t, got.Tools)

	execs, err := s.Executions("tenant-1", 0, 10)
	require.NoError(t, err)
	assert.Len(t, execs, 1, "history survives tool deletion")
}

func TestDeleteAgentKeepsToolsAndHistory(t *testing.T) {
	s := testStore(t)
	search := mkTool(t, s, "tenant-1", "Search")
	agent := mkAgent(t, s, "tenant-1", "Researcher", "Analyst", *search)
	require.NoError(t, s.CreateExecution(&types.AgentExecution{
		TenantID: "tenant-1", AgentID: agent.ID,
		Prompt: "p", Model: "gpt-4o", Response: "r", CreatedAt: time.Now(),
	}))

	require.NoError(t, s.DeleteAgent(agent))

	tools, err := s.Tools("tenant-1", "", "")
	require.NoError(t, err)
	assert.Len(t, tools, 1, "tools are referenced, not owned")

	execs, err := s.Executions("tenant-1", 0, 10)
	require.NoError(t, err)
	assert.Len(t, execs, 1, "history outlives the agent")
}

func TestReplaceAgentTools(t *testing.T) {
	s := testStore(t)
	search := mkTool(t, s, "tenant-1", "Search")
	calc := mkTool(t, s, "tenant-1", "Calculator")
	agent := mkAgent(t, s, "tenant-1", "Researcher", "Analyst", *search)

	require.NoError(t, s.ReplaceAgentTools(agent, []types.Tool{*calc}))
	got, err := s.AgentWithTools("tenant-1", agent.ID)
	require.NoError(t, err)
	require.Len(t, got.Tools, 1)
	assert.Equal(t, "Calculator", got.Tools[0].Name)

	require.NoError(t, s.ReplaceAgentTools(agent, nil))
	got, err = s.AgentWithTools("tenant-1", agent.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tools)
}

func TestExecutionsPagination(t *testing.T) {
	s := testStore(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, s.CreateExecution(&types.AgentExecution{
			TenantID: "tenant-1", AgentID: 1,
			Prompt: "p", Model: "gpt-4o", Response: "r", CreatedAt: time.Now(),
		}))
	}
	require.NoError(t, s.CreateExecution(&types.AgentExecution{
		TenantID: "tenant-2", AgentID: 1,
		Prompt: "p", Model: "gpt-4o", Response: "r", CreatedAt: time.Now(),
	}))

	execs, err := s.Executions("tenant-1", 0, 10)
	require.NoError(t, err)
	assert.Len(t, execs, 3)

	execs, err = s.Executions("tenant-1", 1, 1)
	require.NoError(t, err)
	require.Len(t, execs, 1)
	assert.Equal(t, uint64(2), execs[0].ID, "pages are ordered by id")
}
