// stellar-backend | 2026
// dto.go

package star

import (
	"time"
)

// Measurements travel as the strings the form submitted; the catalog stores
// them verbatim rather than normalizing units.
type CreateStarRequest struct {
	Name        string `validate:"required"`
	Temperature string `validate:"required"`
	Mass        string `validate:"required"`
	Diameter    string `validate:"required"`
	Image       string `validate:"required"`
}

// UpdateStarRequest carries only the submitted fields; nil means keep the
// stored value.
type UpdateStarRequest struct {
	Name        *string
	Temperature *string
	Mass        *string
	Diameter    *string
	Image       *string
}

type StarResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Temperature string    `json:"temperature"`
	Mass        string    `json:"mass"`
	Diameter    string    `json:"diameter"`
	Image       string    `json:"image,omitempty"`
	Planets     []string  `json:"planets"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListStarsParams paginates the catalog listing. Offset follows the
// page*limit-limit convention the API has always used.
type ListStarsParams struct {
	Page  int
	Limit int
}

func (p *ListStarsParams) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

func (p ListStarsParams) Offset() int {
	return p.Page*p.Limit - p.Limit
}

func toStarResponse(s *Star, planets []string) StarResponse {
	if planets == nil {
		planets = []string{}
	}
	return StarResponse{
		ID:          s.ID,
		Name:        s.Name,
		Temperature: s.Temperature,
		Mass:        s.Mass,
		Diameter:    s.Diameter,
		Image:       s.Image,
		Planets:     planets,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
