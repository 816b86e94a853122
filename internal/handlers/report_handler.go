package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
	"github.com/BruksfildServices01/taller-admin/internal/timezone"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

type ReportHandler struct {
	ws *workspace.Workspace
}

func NewReportHandler(ws *workspace.Workspace) *ReportHandler {
	return &ReportHandler{ws: ws}
}

// GET /api/reports
func (h *ReportHandler) Report(c *gin.Context) {
	ov, err := h.ws.Report(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ov)
}

// GET /api/dashboard
func (h *ReportHandler) Dashboard(c *gin.Context) {
	now := timezone.NowIn(h.ws.Location())

	ov, err := h.ws.Dashboard(c.Request.Context(), now)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ov)
}
