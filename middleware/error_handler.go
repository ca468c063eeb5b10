package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/MotorDesk/policy-extraction-backend/errors"
	"github.com/MotorDesk/policy-extraction-backend/logger"
)

type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler translates errors attached to the gin context into structured
// JSON responses. AppError carries its own status; anything else becomes a 500
// with a sanitized body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appErr, ok := err.(*apperrors.AppError); ok {
			log.Errorw("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"error_type", appErr.Type,
				"error", appErr.Message,
				"detail", appErr.Detail,
			)
			c.JSON(appErr.GetHTTPStatus(), ErrorResponse{
				Type:    string(appErr.Type),
				Message: appErr.Message,
				Details: appErr.Detail,
			})
			return
		}

		log.Errorw("Unhandled error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Type:    string(apperrors.ServerError),
			Message: "Internal server error",
		})
	}
}
