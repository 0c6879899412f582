package models

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Credentials are what a login or registration form submits.
type Credentials struct {
	Username string `json:"username" validate:"notblank,max=64"`
	Password string `json:"password" validate:"required,min=4,max=72"`
}
