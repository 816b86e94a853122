package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/domain/inventory"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

type InventoryHandler struct {
	crud[dto.InventoryItemView, dto.InventoryItemInput, dto.InventoryItemPatch]
}

func NewInventoryHandler(ws *workspace.Workspace) *InventoryHandler {
	return &InventoryHandler{
		crud: crud[dto.InventoryItemView, dto.InventoryItemInput, dto.InventoryItemPatch]{store: ws.Inventory},
	}
}

// GET /api/inventory?query=&filter=all|low-stock|categories
func (h *InventoryHandler) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", "all")
	if filter != "all" && filter != "low-stock" && filter != "categories" {
		httperr.BadRequest(c, "invalid_filter", "filtro desconocido")
		return
	}

	res, err := h.store.Load(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	items := derive.FilterInventory(res.Items, c.Query("query"), filter == "low-stock")
	if filter == "categories" {
		httpresp.Loaded(c, derive.GroupByCategory(items), res.Fallback, res.Notice)
		return
	}
	httpresp.Loaded(c, items, res.Fallback, res.Notice)
}

// GET /api/inventory/categories
func (h *InventoryHandler) Categories(c *gin.Context) {
	httpresp.List(c, inventory.Categories())
}
