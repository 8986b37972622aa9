// stellar-backend | 2026
// dto.go

package planet

import (
	"time"
)

// CreatePlanetRequest attaches the planet to its star by the star's name,
// not its id.
type CreatePlanetRequest struct {
	Name           string `validate:"required"`
	DistanceToStar string `validate:"required"`
	Diameter       string `validate:"required"`
	YearDuration   string `validate:"required"`
	DayDuration    string `validate:"required"`
	Temperature    string `validate:"required"`
	SequenceNumber int    `validate:"required"`
	Satellites     int
	Star           string `validate:"required"`
	Image          string `validate:"required"`
}

// UpdatePlanetRequest carries only the submitted fields; nil means keep the
// stored value.
type UpdatePlanetRequest struct {
	Name           *string
	DistanceToStar *string
	Diameter       *string
	YearDuration   *string
	DayDuration    *string
	Temperature    *string
	SequenceNumber *int
	Satellites     *int
	Star           *string
	Image          *string
}

type PlanetResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	DistanceToStar string    `json:"distanceToStar"`
	Diameter       string    `json:"diameter"`
	YearDuration   string    `json:"yearDuration"`
	DayDuration    string    `json:"dayDuration"`
	Temperature    string    `json:"temperature"`
	SequenceNumber int       `json:"sequenceNumber"`
	Satellites     int       `json:"satellites"`
	Image          string    `json:"image,omitempty"`
	Star           string    `json:"star"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ListPlanetsParams struct {
	Page  int
	Limit int
}

func (p *ListPlanetsParams) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

func (p ListPlanetsParams) Offset() int {
	return p.Page*p.Limit - p.Limit
}

func toPlanetResponse(p *Planet) PlanetResponse {
	return PlanetResponse{
		ID:             p.ID,
		Name:           p.Name,
		DistanceToStar: p.DistanceToStar,
		Diameter:       p.Diameter,
		YearDuration:   p.YearDuration,
		DayDuration:    p.DayDuration,
		Temperature:    p.Temperature,
		SequenceNumber: p.SequenceNumber,
		Satellites:     p.Satellites,
		Image:          p.Image,
		Star:           p.StarID,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
