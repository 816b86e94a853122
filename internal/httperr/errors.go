package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/taller-admin/internal/apperr"
)

// FromError writes the response for an error returned by a store or the
// derivation engine. Unknown errors become 500 and the cause is attached to
// the gin context for the request logger.
func FromError(c *gin.Context, err error) {
	var (
		validation *apperr.ValidationError
		conflict   *apperr.ConflictError
		notFound   *apperr.NotFoundError
		lineItem   *apperr.InvalidLineItemError
		transport  *apperr.TransportError
	)

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    "validation_error",
			Message: validation.Message,
			Field:   validation.Field,
		})
	case errors.As(err, &lineItem):
		BadRequest(c, "invalid_line_item", lineItem.Error())
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, HTTPError{
			Code:    "conflict",
			Message: conflict.Error(),
			Field:   conflict.Field,
		})
	case errors.As(err, &notFound):
		NotFound(c, "not_found", notFound.Error())
	case errors.As(err, &transport):
		_ = c.Error(err)
		ServiceUnavailable(c, "store_unavailable", "no se pudo conectar a la base de datos")
	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "error interno")
	}
}
