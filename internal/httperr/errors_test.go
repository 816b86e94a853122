package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
)

func TestFromErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
		field  string
	}{
		{"validation", apperr.Validation("customer_id", "el cliente no existe"), http.StatusBadRequest, "validation_error", "customer_id"},
		{"line item", &apperr.InvalidLineItemError{Index: 0, Quantity: -1}, http.StatusBadRequest, "invalid_line_item", ""},
		{"conflict", fmt.Errorf("create: %w", apperr.Conflict("sku", "FLT-1")), http.StatusConflict, "conflict", "sku"},
		{"not found", apperr.NotFound("invoice", 3), http.StatusNotFound, "not_found", ""},
		{"transport", apperr.Transport("list", errors.New("eof")), http.StatusServiceUnavailable, "store_unavailable", ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.field, body.Field)
			assert.NotEmpty(t, body.Message)
		})
	}
}
