package models

import "time"

type Project struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	CategoryID     string    `json:"categoryProjectId"`
	Category       *Category `json:"categoryProject,omitempty"`
	Image          AssetRef  `json:"image"`
	Skills         []Skill   `json:"skills"`
	LinkDemo       string    `json:"linkDemo,omitempty"`
	LinkRepository string    `json:"linkRepository,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
