package domain

import "errors"

var ErrProjectNotFound = errors.New("Project with such id does not exists")

// Project is an owner-scoped container for tasks. OwnerID is set once at
// creation and never reassigned.
type Project struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
}
