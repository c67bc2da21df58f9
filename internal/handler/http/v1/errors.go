package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/hive_reporting_system/internal/service"
	"github.com/sirupsen/logrus"
)

// writeError отображает ошибки сервиса на HTTP-статусы
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	var violation *service.GeofenceViolationError
	switch {
	case errors.As(err, &violation):
		c.JSON(http.StatusUnprocessableEntity, GeofenceErrorResponse{
			Error:          "proof location is outside the allowed radius",
			DistanceMeters: violation.Distance,
			AllowedMeters:  violation.Allowed,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "invalid transition"})
	case errors.Is(err, service.ErrAlreadyFinalized):
		c.JSON(http.StatusConflict, gin.H{"error": "hive report already finalized"})
	case errors.Is(err, service.ErrDuplicateAction):
		c.JSON(http.StatusConflict, gin.H{"error": "duplicate action"})
	case errors.Is(err, service.ErrRoleMismatch):
		c.JSON(http.StatusForbidden, gin.H{"error": "member is not the reporter"})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
	case errors.Is(err, service.ErrInvalidDistrict):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid district code"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrClassifierUnavailable), errors.Is(err, service.ErrSchemaMismatch):
		c.JSON(http.StatusBadGateway, gin.H{"error": "image classifier failed"})
	case errors.Is(err, service.ErrTransient):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage is busy, try again"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// retryTransient повторяет операцию один раз, если транзакция сорвалась на сериализации или блокировке
func retryTransient[T any](log *logrus.Entry, fn func() (T, error)) (T, error) {
	v, err := fn()
	if errors.Is(err, service.ErrTransient) {
		log.WithError(err).Warn("Transient storage failure, retrying once")
		v, err = fn()
	}
	return v, err
}
