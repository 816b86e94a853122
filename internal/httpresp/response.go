package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/fallback"
)

type ListResponse[T any] struct {
	Data     []T              `json:"data"`
	Total    int              `json:"total"`
	Fallback bool             `json:"fallback"`
	Notice   *fallback.Notice `json:"notice,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func List[T any](c *gin.Context, data []T) {
	Loaded(c, data, false, nil)
}

// Loaded writes a list that may come from sample data.
func Loaded[T any](c *gin.Context, data []T, fallbackMode bool, notice *fallback.Notice) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:     data,
		Total:    len(data),
		Fallback: fallbackMode,
		Notice:   notice,
	})
}
