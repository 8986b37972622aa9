// stellar-backend | 2026
// entity.go

package planet

import (
	"time"
)

// Planet is a catalog planet. Every planet belongs to exactly one star;
// deleting the star cascades to its planets.
type Planet struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	DistanceToStar string    `db:"distance_to_star"`
	Diameter       string    `db:"diameter"`
	YearDuration   string    `db:"year_duration"`
	DayDuration    string    `db:"day_duration"`
	Temperature    string    `db:"temperature"`
	SequenceNumber int       `db:"sequence_number"`
	Satellites     int       `db:"satellites"`
	Image          string    `db:"image"`
	StarID         string    `db:"star_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
