// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// MaxUsernameLength is the storage limit of the username column.
const MaxUsernameLength = 20

// User represents an account entity used for authentication.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the store and never shown to the browser.
	UserID int64 `json:"-"`

	// Username is the unique login name, at most [MaxUsernameLength] characters.
	Username string `json:"username"`

	// PasswordHash is the bcrypt output for the user's password.
	// The plaintext is never stored.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the form input submitted on login and signup.
type Credentials struct {
	Username string
	Password string
}
