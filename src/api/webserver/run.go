package webserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/stake-plus/agenthub/src/api/engine"
)

type Run struct {
	eng *engine.Engine
}

func NewRun(eng *engine.Engine) Run {
	return Run{eng: eng}
}

func (h Run) Execute(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Prompt string `json:"prompt" binding:"required"`
		Model  string `json:"model"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": err.Error()})
		return
	}

	res, err := h.eng.Run(c.Request.Context(), tenantID(c), id, req.Prompt, req.Model)
	switch {
	case errors.Is(err, engine.ErrUnsupportedModel):
		c.JSON(http.StatusBadRequest, gin.H{"err": "unsupported model"})
	case errors.Is(err, engine.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"err": "Rate limit exceeded. Try again later."})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"err": "Agent not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
	default:
		c.JSON(http.StatusOK, res)
	}
}
