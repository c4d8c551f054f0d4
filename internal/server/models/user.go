// Package models contains the persisted record types of the service.
package models

import "time"

// User is a registered account. PasswordHash is the bcrypt hash of the
// password and must never leave the service: responses are built from
// Public() instead.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// PublicUser is the externally visible part of a User.
type PublicUser struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Public strips the password hash from the record.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
