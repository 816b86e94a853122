package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

type InvoiceHandler struct {
	crud[dto.InvoiceView, dto.InvoiceInput, dto.InvoicePatch]
}

func NewInvoiceHandler(ws *workspace.Workspace) *InvoiceHandler {
	return &InvoiceHandler{
		crud: crud[dto.InvoiceView, dto.InvoiceInput, dto.InvoicePatch]{store: ws.Invoices},
	}
}

// GET /api/invoices?query=&status=
func (h *InvoiceHandler) List(c *gin.Context) {
	res, err := h.store.Load(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	items := derive.FilterInvoices(res.Items, listFilter(c))
	httpresp.Loaded(c, items, res.Fallback, res.Notice)
}
