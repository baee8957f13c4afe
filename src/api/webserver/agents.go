package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stake-plus/agenthub/src/api/data"
	"github.com/stake-plus/agenthub/src/api/types"
)

type Agents struct {
	store *data.Store
}

func NewAgents(store *data.Store) Agents {
	return Agents{store: store}
}

// resolveTools validates that every requested tool id exists and
// belongs to the tenant. A single missing or foreign id rejects the
// whole request.
func (h Agents) resolveTools(c *gin.Context, ids []uint64) ([]types.Tool, bool) {
	tools, err := h.store.ToolsByID(tenantID(c), ids)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return nil, false
	}
	if len(tools) != len(ids) {
		c.JSON(http.StatusBadRequest, gin.H{"err": "One or more tools not found"})
		return nil, false
	}
	return tools, true
}

func (h Agents) Create(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required"`
		Role        string   `json:"role" binding:"required"`
		Description string   `json:"description" binding:"required"`
		ToolIDs     []uint64 `json:"tool_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	tools, ok := h.resolveTools(c, req.ToolIDs)
	if !ok {
		return
	}

	agent := &types.Agent{
		TenantID:    tenantID(c),
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Tools:       tools,
	}
	if err := h.store.CreateAgent(agent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if agent.Tools == nil {
		agent.Tools = []types.Tool{}
	}
	c.JSON(http.StatusCreated, agent)
}

func (h Agents) List(c *gin.Context) {
	agents, err := h.store.Agents(tenantID(c), c.Query("name"), c.Query("role"), c.Query("tool_name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if agents == nil {
		agents = []types.Agent{}
	}
	for i := range agents {
		if agents[i].Tools == nil {
			agents[i].Tools = []types.Tool{}
		}
	}
	c.JSON(http.StatusOK, agents)
}

func (h Agents) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	agent, err := h.store.AgentWithTools(tenantID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"err": "Agent not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if agent.Tools == nil {
		agent.Tools = []types.Tool{}
	}
	c.JSON(http.StatusOK, agent)
}

func (h Agents) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string   `json:"name"`
		Role        *string   `json:"role"`
		Description *string   `json:"description"`
		ToolIDs     *[]uint64 `json:"tool_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	agent, err := h.store.AgentWithTools(tenantID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"err": "Agent not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	// Validate tool references before touching anything so a bad
	// request leaves no partial mutation behind.
	var tools []types.Tool
	if req.ToolIDs != nil {
		if tools, ok = h.resolveTools(c, *req.ToolIDs); !ok {
			return
		}
	}

	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Role != nil {
		agent.Role = *req.Role
	}
	if req.Description != nil {
		agent.Description = *req.Description
	}
	if err := h.store.UpdateAgent(agent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	if req.ToolIDs != nil {
		if err := h.store.ReplaceAgentTools(agent, tools); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
			return
		}
		agent.Tools = tools
	}
	if agent.Tools == nil {
		agent.Tools = []types.Tool{}
	}
	c.JSON(http.StatusOK, agent)
}

func (h Agents) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	agent, err := h.store.AgentWithTools(tenantID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"err": "Agent not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	if err := h.store.DeleteAgent(agent); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Agent deleted"})
}
