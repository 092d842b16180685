package models

import (
	"github.com/uptrace/bun"
)

// Event date is stored as free-form text. The original system never validated
// its format and existing rows carry arbitrary strings.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Name     string `bun:"name,notnull" json:"name"`
	Date     string `bun:"date,notnull" json:"date"`
	Location string `bun:"location,notnull" json:"location"`
}

// EventPage is the response shape of the paginated listing.
type EventPage struct {
	Events     []Event `json:"events"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
}
