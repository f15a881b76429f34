package models

import "time"

type Skill struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LevelID   string    `json:"levelId"`
	Level     *Level    `json:"experienceLevel,omitempty"`
	Icon      AssetRef  `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
}
