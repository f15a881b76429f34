package models

import "time"

// Level is an experience level a skill can be tagged with, e.g.
// "Experienced" at 75.
type Level struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	CompetencyLevel int       `json:"competencyLevel"`
	CreatedAt       time.Time `json:"createdAt"`
}
