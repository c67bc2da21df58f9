package models

import (
	"time"

	"github.com/google/uuid"
)

type Species string

const (
	SpeciesWasp     Species = "WASP"
	SpeciesHoneybee Species = "HONEYBEE"
	SpeciesNone     Species = "NONE"
)

func (s Species) Valid() bool {
	switch s {
	case SpeciesWasp, SpeciesHoneybee, SpeciesNone:
		return true
	}
	return false
}

// ReportStatus - статус сообщения о гнезде. Пустое значение означает, что отчет еще не финализирован
type ReportStatus string

const (
	StatusUnfinalized ReportStatus = ""
	StatusReported    ReportStatus = "REPORTED"
	StatusReserved    ReportStatus = "RESERVED"
	StatusRemoved     ReportStatus = "REMOVED"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case StatusReported, StatusReserved, StatusRemoved:
		return true
	}
	return false
}

// HiveReport - агрегат сообщения о гнезде
type HiveReport struct {
	ID           uuid.UUID    `json:"id"`
	Species      Species      `json:"species,omitempty"`
	Status       ReportStatus `json:"status,omitempty"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	RoadAddress  string       `json:"road_address,omitempty"`
	DistrictCode string       `json:"district_code,omitempty"`
	ImageURL     string       `json:"image_url"`
	AISpecies    Species      `json:"ai_species,omitempty"`
	AIConfidence float64      `json:"ai_confidence"`
	AIReason     string       `json:"ai_reason,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (r *HiveReport) Finalized() bool {
	return r.Status != StatusUnfinalized
}

// Pin - проекция отчета для отображения на карте
type Pin struct {
	ID        uuid.UUID `json:"id"`
	Species   Species   `json:"species"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// BoundingBox задает прямоугольную область карты. Nil-границы не ограничивают выборку
type BoundingBox struct {
	MinLat *float64
	MaxLat *float64
	MinLng *float64
	MaxLng *float64
}

// Contains сообщает, попадает ли точка в область
func (b BoundingBox) Contains(lat, lng float64) bool {
	if b.MinLat != nil && lat < *b.MinLat {
		return false
	}
	if b.MaxLat != nil && lat > *b.MaxLat {
		return false
	}
	if b.MinLng != nil && lng < *b.MinLng {
		return false
	}
	if b.MaxLng != nil && lng > *b.MaxLng {
		return false
	}
	return true
}
