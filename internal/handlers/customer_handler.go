package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

type CustomerHandler struct {
	crud[dto.CustomerView, dto.CustomerInput, dto.CustomerPatch]
}

func NewCustomerHandler(ws *workspace.Workspace) *CustomerHandler {
	return &CustomerHandler{
		crud: crud[dto.CustomerView, dto.CustomerInput, dto.CustomerPatch]{store: ws.Customers},
	}
}

// GET /api/customers?query=
func (h *CustomerHandler) List(c *gin.Context) {
	res, err := h.store.Load(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	items := derive.FilterCustomers(res.Items, c.Query("query"))
	httpresp.Loaded(c, items, res.Fallback, res.Notice)
}
