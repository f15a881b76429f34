package models

import "time"

// User is the single admin account. PasswordHash is bcrypt and never leaves
// the server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Profile      AssetRef  `json:"profile"`
	CV           AssetRef  `json:"cv"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
