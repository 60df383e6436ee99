package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
)

// ProjectService implements project creation and the ownership gate.
type ProjectService struct {
	projects ports.ProjectRepository
	users    ports.UserRepository
	cache    ports.IdentityCache
	log      zerolog.Logger
}

// NewProjectService wires the service. cache may be nil; the gate then
// resolves the owner through the user repository on every call.
func NewProjectService(projects ports.ProjectRepository, users ports.UserRepository, cache ports.IdentityCache, log zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, users: users, cache: cache, log: log}
}

func (s *ProjectService) Create(ctx context.Context, input ports.CreateProjectInput, username string) (*domain.Project, error) {
	ownerID, err := s.resolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	created, err := s.projects.Create(ctx, &domain.Project{
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     ownerID,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("project_id", created.ID).Str("owner", username).Msg("project created")
	return created, nil
}

// GetOwnedProject is the ownership gate. The repository filters by id and
// owner in one query, so a project owned by someone else surfaces exactly
// like a missing one. Never returns a forbidden-style error.
func (s *ProjectService) GetOwnedProject(ctx context.Context, projectID, username string) (*domain.Project, error) {
	ownerID, err := s.resolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	return s.projects.FindByIDAndOwner(ctx, projectID, ownerID)
}

// resolveUserID maps the authenticated username to its user id, consulting
// the identity cache first. User ids are immutable, so a cached mapping can
// only ever go stale by disappearing, never by pointing at the wrong user.
func (s *ProjectService) resolveUserID(ctx context.Context, username string) (string, error) {
	if s.cache != nil {
		if id, ok := s.cache.GetUserID(ctx, username); ok {
			return id, nil
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		s.cache.SetUserID(ctx, username, user.ID)
	}
	return user.ID, nil
}
