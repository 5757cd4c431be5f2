package branch

import "time"

type Branch struct {
	ID        string
	Name      string
	IsOffice  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
