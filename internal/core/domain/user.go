package domain

import "errors"

var ErrUsernameTaken = errors.New("Username is taken")
var ErrUserNotFound = errors.New("User not found")
var ErrInvalidPassword = errors.New("Invalid password entered")
var ErrAccessDenied = errors.New("Access is denied")

// User models a registered account. The password hash never leaves the
// process: it is excluded from JSON so no handler can echo it back.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
