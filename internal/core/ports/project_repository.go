package ports

import (
	"context"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
)

// ProjectRepository defines the interface for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	// FindByIDAndOwner filters by both id and owner in a single query so an
	// existing project owned by someone else is indistinguishable from a
	// missing one: both return domain.ErrProjectNotFound.
	FindByIDAndOwner(ctx context.Context, id, ownerID string) (*domain.Project, error)
}
