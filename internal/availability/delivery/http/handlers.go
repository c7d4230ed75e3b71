package http

import (
	"github.com/gin-gonic/gin"

	"rental-availability/pkg/response"
)

// Resolve godoc
// @Summary     Resolve an availability query
// @Description Interprets a free-text date query and answers it against the booking calendar and the weekly price list.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Query payload"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/availability/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newResolveResp(output))
}

// Query godoc
// @Summary     Resolve an availability query (GET)
// @Description Same as the resolve endpoint, with the free text passed as a URL parameter. Handy for quick checks from a browser.
// @Tags        Availability
// @Accept      json
// @Produce     json
// @Param       q query string true "Free-text date query"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/availability [GET]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newResolveResp(output))
}
