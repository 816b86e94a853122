package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/taller-admin/internal/fallback"
	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
)

type NoticeHandler struct {
	board fallback.NoticeBoard
}

func NewNoticeHandler(board fallback.NoticeBoard) *NoticeHandler {
	return &NoticeHandler{board: board}
}

func (h *NoticeHandler) List(c *gin.Context) {
	notices, err := h.board.List(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, notices)
}

func (h *NoticeHandler) Dismiss(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "identificador inválido")
		return
	}

	if err := h.board.Dismiss(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.NoContent(c)
}
