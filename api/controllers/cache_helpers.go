package controllers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// The index feed is cached per page under this prefix. Writes do not
// invalidate it; staleness is bounded by the TTL alone.
const indexCachePrefix = "index_page:"

func indexCacheKey(page int) string {
	return fmt.Sprintf("%s%d", indexCachePrefix, page)
}

// ClearIndexCache purges every cached index page immediately. Guarded by
// INTERNAL_TOKEN when one is configured.
func (server *Server) ClearIndexCache(c *gin.Context) {
	if token := os.Getenv("INTERNAL_TOKEN"); token != "" && c.GetHeader("X-Internal-Token") != token {
		c.Status(http.StatusForbidden)
		return
	}
	if server.Cache == nil {
		c.Status(http.StatusNoContent)
		return
	}
	if err := server.Cache.ClearPrefix(c.Request.Context(), indexCachePrefix); err != nil {
		server.serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
