package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health answers 200 even when the database is down; the API keeps
// serving sample data in that case.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "up"
	sqlDB, err := h.db.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		database = "down"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database,
	})
}
