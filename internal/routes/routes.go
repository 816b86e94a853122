package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/audit"
	"github.com/BruksfildServices01/taller-admin/internal/config"
	"github.com/BruksfildServices01/taller-admin/internal/derive"
	"github.com/BruksfildServices01/taller-admin/internal/fallback"
	"github.com/BruksfildServices01/taller-admin/internal/handlers"
	"github.com/BruksfildServices01/taller-admin/internal/infra/memory"
	infraRepo "github.com/BruksfildServices01/taller-admin/internal/infra/repository"
	"github.com/BruksfildServices01/taller-admin/internal/middleware"
	"github.com/BruksfildServices01/taller-admin/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/taller-admin/internal/usecase/appointment"
	"github.com/BruksfildServices01/taller-admin/internal/workspace"
)

// RegisterRoutes wires the API and returns the audit dispatcher so the
// caller can drain it on shutdown.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	board fallback.NoticeBoard,
	log zerolog.Logger,
) *audit.Dispatcher {

	// ======================================================
	// MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(log))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	engine := derive.NewEngine(cfg.TaxRate)
	live := infraRepo.NewGateway(db, engine, cfg.InvoicePrefix)
	local := memory.NewDB(engine, cfg.InvoicePrefix, fallback.Sample())

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	policy := fallback.NewPolicy(board, log)

	ws := workspace.New(live, local, policy, auditDispatcher, timezone.Location(cfg.ShopTimezone))

	// ======================================================
	// USE CASES: APPOINTMENTS
	// ======================================================
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(ws.Appointments)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(ws.Appointments)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(ws.Appointments)

	// ======================================================
	// HANDLERS
	// ======================================================
	customerHandler := handlers.NewCustomerHandler(ws)
	appointmentHandler := handlers.NewAppointmentHandler(
		ws,
		confirmAppointmentUC,
		completeAppointmentUC,
		cancelAppointmentUC,
	)
	inventoryHandler := handlers.NewInventoryHandler(ws)
	repairOrderHandler := handlers.NewRepairOrderHandler(ws)
	invoiceHandler := handlers.NewInvoiceHandler(ws)
	reportHandler := handlers.NewReportHandler(ws)
	noticeHandler := handlers.NewNoticeHandler(board)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	r.GET("/health", healthHandler.Health)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)

		api.GET("/customers", customerHandler.List)
		api.POST("/customers", customerHandler.Create)
		api.PATCH("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.PATCH("/appointments/:id", appointmentHandler.Update)
		api.DELETE("/appointments/:id", appointmentHandler.Delete)
		api.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
		api.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

		api.GET("/inventory", inventoryHandler.List)
		api.GET("/inventory/categories", inventoryHandler.Categories)
		api.POST("/inventory", inventoryHandler.Create)
		api.PATCH("/inventory/:id", inventoryHandler.Update)
		api.DELETE("/inventory/:id", inventoryHandler.Delete)

		api.GET("/repair-orders", repairOrderHandler.List)
		api.POST("/repair-orders", repairOrderHandler.Create)
		api.PATCH("/repair-orders/:id", repairOrderHandler.Update)
		api.DELETE("/repair-orders/:id", repairOrderHandler.Delete)

		api.GET("/invoices", invoiceHandler.List)
		api.POST("/invoices", invoiceHandler.Create)
		api.PATCH("/invoices/:id", invoiceHandler.Update)
		api.DELETE("/invoices/:id", invoiceHandler.Delete)

		// ------------------------------
		// REPORTS & NOTICES
		// ------------------------------
		api.GET("/reports", reportHandler.Report)
		api.GET("/dashboard", reportHandler.Dashboard)

		api.GET("/notices", noticeHandler.List)
		api.DELETE("/notices/:id", noticeHandler.Dismiss)

		api.GET("/audit-logs", auditLogsHandler.List)
	}

	return auditDispatcher
}
