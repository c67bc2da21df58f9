package service

import (
	"errors"
	"fmt"
)

// Ожидаемые исходы операций жизненного цикла. Вызывающий различает их через errors.Is
var (
	ErrNotFound              = errors.New("not found")
	ErrInvalidTransition     = errors.New("invalid transition")
	ErrRoleMismatch          = errors.New("member and reporter mismatch")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrAlreadyFinalized      = errors.New("hive report already finalized")
	ErrDuplicateAction       = errors.New("duplicate action")
	ErrGeofenceViolation     = errors.New("geofence violation")
	ErrInvalidDistrict       = errors.New("invalid district code")
	ErrInvalidInput          = errors.New("invalid input")
	ErrClassifierUnavailable = errors.New("image classifier unavailable")
	ErrSchemaMismatch        = errors.New("image classifier schema mismatch")
	// ErrTransient - сбой уровня транзакции (сериализация, deadlock, таймаут блокировки), допускает один повтор
	ErrTransient = errors.New("transient storage failure")
)

// GeofenceViolationError несет измеренное расстояние и допустимый радиус
type GeofenceViolationError struct {
	Distance float64
	Allowed  float64
}

func (e *GeofenceViolationError) Error() string {
	return fmt.Sprintf("%s: proof is %.1fm away, allowed %.1fm", ErrGeofenceViolation, e.Distance, e.Allowed)
}

func (e *GeofenceViolationError) Is(target error) bool {
	return target == ErrGeofenceViolation
}
