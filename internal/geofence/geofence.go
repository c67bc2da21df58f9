// Package geofence проверяет расстояние между точкой отчета и точкой подтверждения
package geofence

import (
	"fmt"
	"math"
)

// EarthRadiusMeters - средний радиус Земли
const EarthRadiusMeters = 6_371_000.0

// Point - географическая координата в градусах
type Point struct {
	Lat float64
	Lng float64
}

// Distance возвращает расстояние по дуге большого круга между a и b в метрах (формула гаверсинусов)
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// на антиподах ошибка округления может дать h чуть больше 1
	h = math.Min(1, h)
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Violation - точка подтверждения слишком далеко от точки отчета
type Violation struct {
	Distance float64
	Allowed  float64
}

func (v *Violation) Error() string {
	return fmt.Sprintf("geofence violation: %.1fm from report location, allowed %.1fm", v.Distance, v.Allowed)
}

// Validator сравнивает расстояние с допустимым радиусом
type Validator struct {
	RadiusMeters float64
}

func NewValidator(radiusMeters float64) Validator {
	return Validator{RadiusMeters: radiusMeters}
}

// Check возвращает измеренное расстояние и *Violation, если радиус превышен
func (v Validator) Check(reported, submitted Point) (float64, error) {
	d := Distance(reported, submitted)
	if d > v.RadiusMeters {
		return d, &Violation{Distance: d, Allowed: v.RadiusMeters}
	}
	return d, nil
}
