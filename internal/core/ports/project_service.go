package ports

import (
	"context"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

// CreateProjectInput carries the data needed to create a project.
type CreateProjectInput struct {
	Title       string
	Description string
}

// ProjectService defines use-case operations for projects, including the
// ownership gate every task route passes through.
type ProjectService interface {
	Create(ctx context.Context, input CreateProjectInput, username string) (*domain.Project, error)
	// GetOwnedProject resolves the project only when it is owned by the given
	// user. Absent and not-owned both yield domain.ErrProjectNotFound.
	GetOwnedProject(ctx context.Context, projectID, username string) (*domain.Project, error)
}
