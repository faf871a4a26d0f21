package handler

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/soukly/api/internal/constants"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/pkg/logger"
)

// debugMode widens error responses with the underlying error and a stack
// trace. Set once at startup from the app config.
var debugMode bool

func SetDebugMode(enabled bool) {
	debugMode = enabled
}

// respondError renders the uniform error envelope: 4xx errors report
// status "fail", everything else "error".
func respondError(c *gin.Context, err error) {
	status := apperrors.ToHTTPStatus(err)

	statusText := constants.StatusError
	if status >= 400 && status < 500 {
		statusText = constants.StatusFail
	}

	if status >= 500 {
		logger.GetLogger().Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	message := apperrors.GetErrorMessage(err)
	if debugMode {
		c.JSON(status, constants.BuildDebugErrorResponse(statusText, message, err.Error(), string(debug.Stack())))
		return
	}
	c.JSON(status, constants.BuildErrorResponse(statusText, message))
}

// bindJSON binds and validates the request body, rendering the
// field-level validation envelope on failure.
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, constants.BuildValidationResponse(validationMessages(err)))
		return false
	}
	return true
}

// validationMessages flattens validator errors into per-field messages.
func validationMessages(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s=%s' rule", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", fe.Field(), fe.Tag()))
		}
	}
	return messages
}

// paramID parses a numeric path parameter.
func paramID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, apperrors.WrapError(apperrors.ErrInvalidInput,
			fmt.Errorf("invalid id %q", raw)))
		return 0, false
	}
	return uint(id), true
}
