package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/monitoring-dashboard/services"
	"github.com/monitoring-dashboard/utils"
	"go.uber.org/zap"
)

// statusFor maps a service error onto an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, errors.NotValid), errors.Is(err, errors.BadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errors.NotFound):
		return http.StatusNotFound
	case errors.Is(err, services.StoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, log *zap.Logger, message string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error(message,
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

// pathID parses the :id route parameter, answering 400 when it is not a positive integer
func pathID(c *gin.Context) (uint, bool) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid ID",
			"error":   err.Error(),
		})
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric query parameter
func queryID(c *gin.Context, key string) (*uint, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return nil, nil
	}
	id, err := utils.ParseID(raw)
	if err != nil {
		return nil, errors.NotValidf("query parameter %s=%q", key, raw)
	}
	return &id, nil
}

// bindFields decodes a JSON object body into a field map
func bindFields(c *gin.Context) (map[string]interface{}, bool) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return nil, false
	}
	if input == nil {
		input = map[string]interface{}{}
	}
	return input, true
}
