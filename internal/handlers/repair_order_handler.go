package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

type RepairOrderHandler struct {
	crud[dto.RepairOrderView, dto.RepairOrderInput, dto.RepairOrderPatch]
}

func NewRepairOrderHandler(ws *workspace.Workspace) *RepairOrderHandler {
	return &RepairOrderHandler{
		crud: crud[dto.RepairOrderView, dto.RepairOrderInput, dto.RepairOrderPatch]{store: ws.RepairOrders},
	}
}

// GET /api/repair-orders?query=&status=
func (h *RepairOrderHandler) List(c *gin.Context) {
	res, err := h.store.Load(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	items := derive.FilterRepairOrders(res.Items, listFilter(c))
	httpresp.Loaded(c, items, res.Fallback, res.Notice)
}
