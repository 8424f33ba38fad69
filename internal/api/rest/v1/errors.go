package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ravipangali7/My-Restro-Server/internal/domain"
)

// respondError maps domain sentinel errors to HTTP status codes.
func respondError(ctx *gin.Context, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	}
	ctx.JSON(status, ErrorResponse{Message: err.Error()})
}
