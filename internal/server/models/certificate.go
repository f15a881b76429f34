package models

import "time"

type Certificate struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Image     AssetRef  `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
