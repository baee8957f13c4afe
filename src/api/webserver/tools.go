package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stake-plus/agenthub/src/api/data"
	"github.com/stake-plus/agenthub/src/api/types"
)

type Tools struct {
	store *data.Store
}

func NewTools(store *data.Store) Tools {
	return Tools{store: store}
}

func (h Tools) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	tool := &types.Tool{
		TenantID:    tenantID(c),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.store.CreateTool(tool); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tool)
}

func (h Tools) List(c *gin.Context) {
	tools, err := h.store.Tools(tenantID(c), c.Query("name"), c.Query("agent_name"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if tools == nil {
		tools = []types.Tool{}
	}
	c.JSON(http.StatusOK, tools)
}

func (h Tools) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	tool, err := h.store.Tool(tenantID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"err": "Tool not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	if req.Name != nil {
		tool.Name = *req.Name
	}
	if req.Description != nil {
		tool.Description = *req.Description
	}
	if err := h.store.UpdateTool(tool); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tool)
}

func (h Tools) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	tool, err := h.store.Tool(tenantID(c), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"err": "Tool not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}

	if err := h.store.DeleteTool(tool); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Tool deleted"})
}
