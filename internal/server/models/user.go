// Package models defines the persistent entities of the task manager.
package models

import "time"

// User is a registered account. Users are created at signup and never
// deleted; the password hash is the only conceptually mutable field and is
// never exposed outside the storage and auth layers.
type User struct {
	ID           int64
	UserName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
