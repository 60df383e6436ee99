package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/kkkiikkk/kit-global-test/internal/core/domain"
	"github.com/kkkiikkk/kit-global-test/internal/core/ports"
)

type stubProjectRepo struct {
	projects map[string]*domain.Project
	nextID   int
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*domain.Project)}
}

func (r *stubProjectRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	clone := *p
	r.nextID++
	clone.ID = fmt.Sprintf("project-%d", r.nextID)
	r.projects[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *stubProjectRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*domain.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.OwnerID != ownerID {
		return nil, domain.ErrProjectNotFound
	}
	clone := *p
	return &clone, nil
}

type stubIdentityCache struct {
	ids    map[string]string
	hits   int
	misses int
}

func newStubIdentityCache() *stubIdentityCache {
	return &stubIdentityCache{ids: make(map[string]string)}
}

func (c *stubIdentityCache) GetUserID(_ context.Context, username string) (string, bool) {
	id, ok := c.ids[username]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return id, ok
}

func (c *stubIdentityCache) SetUserID(_ context.Context, username, userID string) {
	c.ids[username] = userID
}

func seedUsers(t *testing.T, repo *stubUserRepo, usernames ...string) map[string]string {
	t.Helper()
	ids := make(map[string]string, len(usernames))
	for _, username := range usernames {
		u, err := repo.Create(context.Background(), &domain.User{Username: username, PasswordHash: "x"})
		if err != nil {
			t.Fatalf("seed user %s: %v", username, err)
		}
		ids[username] = u.ID
	}
	return ids
}

func TestProjectService_Create_SetsOwner(t *testing.T) {
	users := newStubUserRepo()
	projects := newStubProjectRepo()
	ids := seedUsers(t, users, "alice")
	svc := NewProjectService(projects, users, nil, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "Board", Description: "d"}, "alice")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.OwnerID != ids["alice"] {
		t.Fatalf("expected owner %s, got %s", ids["alice"], p.OwnerID)
	}
	if p.ID == "" {
		t.Fatalf("expected assigned id")
	}
}

func TestProjectService_Create_UnknownUser(t *testing.T) {
	users := newStubUserRepo()
	projects := newStubProjectRepo()
	svc := NewProjectService(projects, users, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "x"}, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestProjectService_OwnershipGate(t *testing.T) {
	users := newStubUserRepo()
	projects := newStubProjectRepo()
	seedUsers(t, users, "alice", "bob")
	svc := NewProjectService(projects, users, nil, zerolog.Nop())

	alicesProject, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "A"}, "alice")
	if err != nil {
		t.Fatalf("create alice project: %v", err)
	}
	bobsProject, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "B"}, "bob")
	if err != nil {
		t.Fatalf("create bob project: %v", err)
	}

	// The owner resolves their own project.
	got, err := svc.GetOwnedProject(context.Background(), alicesProject.ID, "alice")
	if err != nil {
		t.Fatalf("owner denied own project: %v", err)
	}
	if got.ID != alicesProject.ID {
		t.Fatalf("unexpected project: %+v", got)
	}

	// Someone else's project is indistinguishable from a missing one.
	if _, err := svc.GetOwnedProject(context.Background(), bobsProject.ID, "alice"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for foreign project, got %v", err)
	}
	if _, err := svc.GetOwnedProject(context.Background(), "does-not-exist", "alice"); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound for missing project, got %v", err)
	}
}

func TestProjectService_IdentityCache(t *testing.T) {
	users := newStubUserRepo()
	projects := newStubProjectRepo()
	seedUsers(t, users, "alice")
	cache := newStubIdentityCache()
	svc := NewProjectService(projects, users, cache, zerolog.Nop())

	p, err := svc.Create(context.Background(), ports.CreateProjectInput{Title: "A"}, "alice")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cache.misses != 1 {
		t.Fatalf("expected one cache miss, got %d", cache.misses)
	}

	if _, err := svc.GetOwnedProject(context.Background(), p.ID, "alice"); err != nil {
		t.Fatalf("gate failed: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected cached owner lookup, got hits=%d misses=%d", cache.hits, cache.misses)
	}
}
