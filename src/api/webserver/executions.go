package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/stake-plus/agenthub/src/api/data"
	"github.com/stake-plus/agenthub/src/api/types"
)

type Executions struct {
	store *data.Store
}

func NewExecutions(store *data.Store) Executions {
	return Executions{store: store}
}

func (h Executions) List(c *gin.Context) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	execs, err := h.store.Executions(tenantID(c), skip, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return
	}
	if execs == nil {
		execs = []types.AgentExecution{}
	}
	c.JSON(http.StatusOK, execs)
}
