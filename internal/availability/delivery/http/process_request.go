package http

import (
	"github.com/gin-gonic/gin"
)

// processResolveReq binds and validates the resolve request body.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processQueryReq reads the free-text query from the URL for GET callers.
func (h *handler) processQueryReq(c *gin.Context) (resolveReq, error) {
	req := resolveReq{Query: c.Query("q")}
	return req, req.validate()
}
