package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/dto"
	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/taller-admin/internal/usecase/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	crud[dto.AppointmentView, dto.AppointmentInput, dto.AppointmentPatch]

	confirmUC  *ucAppointment.ConfirmAppointment
	completeUC *ucAppointment.CompleteAppointment
	cancelUC   *ucAppointment.CancelAppointment
}

func NewAppointmentHandler(
	ws *workspace.Workspace,
	confirmUC *ucAppointment.ConfirmAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	cancelUC *ucAppointment.CancelAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		crud:       crud[dto.AppointmentView, dto.AppointmentInput, dto.AppointmentPatch]{store: ws.Appointments},
		confirmUC:  confirmUC,
		completeUC: completeUC,
		cancelUC:   cancelUC,
	}
}

// ======================================================
// LIST
// ======================================================

// GET /api/appointments?query=&status=
func (h *AppointmentHandler) List(c *gin.Context) {
	res, err := h.store.Load(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	items := derive.FilterAppointments(res.Items, listFilter(c))
	httpresp.Loaded(c, items, res.Fallback, res.Notice)
}

// ======================================================
// LIFECYCLE
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, h.confirmUC.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, h.completeUC.Execute)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, h.cancelUC.Execute)
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	execute func(ctx context.Context, id uint) (dto.AppointmentView, error),
) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ap, err := execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
