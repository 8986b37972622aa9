// stellar-backend | 2026
// entity.go

package star

import (
	"time"
)

// Star is a catalog star. Planets reference it by foreign key; the planet id
// list on responses is derived, never stored here.
type Star struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Temperature string    `db:"temperature"`
	Mass        string    `db:"mass"`
	Diameter    string    `db:"diameter"`
	Image       string    `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
