package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "gmao-system/pkg/errors"
)

// DataResponse wraps the payload under its resource-named key, e.g.
// {"equipment": [...]} or {"breakdown": {...}}.
func DataResponse(ctx echo.Context, code int, key string, body interface{}) error {
	return ctx.JSON(code, map[string]interface{}{key: body})
}

func MessageResponse(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusOK, map[string]string{"message": message})
}

// ErrorResponse maps an error to {"error": "<message>"} with the proper
// status code. Unexpected errors surface a generic message; the detail goes
// to the server log only.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *apperrors.HttpError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = "Record not found"
	case errors.Is(err, apperrors.ErrConflict):
		code = http.StatusBadRequest
		message = "Duplicate record"
	default:
		logger.Error("unexpected error",
			zap.String("method", ctx.Request().Method),
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(code, map[string]string{"error": message})
}
