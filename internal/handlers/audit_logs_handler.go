package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/taller-admin/internal/httperr"
	"github.com/BruksfildServices01/taller-admin/internal/models"
)

const (
	auditDefaultLimit = 50
	auditMaxLimit     = 200
)

// auditQuery is the filter set of GET /api/audit-logs. Dates are UTC
// calendar days; "to" includes the whole day.
type auditQuery struct {
	Action   string    `form:"action"`
	Entity   string    `form:"entity"`
	Fallback bool      `form:"fallback"`
	From     time.Time `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To       time.Time `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Page     int       `form:"page,default=1"`
	Limit    int       `form:"limit,default=50"`
}

func (q *auditQuery) normalize() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 || q.Limit > auditMaxLimit {
		q.Limit = auditDefaultLimit
	}
}

func (q auditQuery) scope(db *gorm.DB) *gorm.DB {
	if q.Action != "" {
		db = db.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		db = db.Where("entity = ?", q.Entity)
	}
	if q.Fallback {
		db = db.Where("fallback = ?", true)
	}
	if !q.From.IsZero() {
		db = db.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		db = db.Where("created_at < ?", q.To.AddDate(0, 0, 1))
	}
	return db
}

type auditPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// AuditLogsHandler reads the audit trail straight from the database; it has
// no sample-data fallback.
type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	var q auditQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_query", "parámetros de consulta inválidos")
		return
	}
	q.normalize()

	ctx := c.Request.Context()
	query := func() *gorm.DB {
		return q.scope(h.db.WithContext(ctx).Model(&models.AuditLog{}))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		httperr.ServiceUnavailable(c, "audit_count_failed", "no se pudo contar el registro de auditoría")
		return
	}

	logs := []models.AuditLog{}
	if err := query().
		Order("created_at DESC, id DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&logs).Error; err != nil {
		httperr.ServiceUnavailable(c, "audit_list_failed", "no se pudo leer el registro de auditoría")
		return
	}

	c.JSON(http.StatusOK, auditPage{Page: q.Page, Limit: q.Limit, Total: total, Logs: logs})
}
