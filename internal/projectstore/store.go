// Package projectstore keeps the loaded project hierarchies in memory and
// resolves projects by external id.
//
// The store is read-mostly: it is filled at startup and replaced wholesale
// on reload, while any number of searches look projects up concurrently. A
// sync.RWMutex guards the index; the projects themselves are never mutated
// after they are stored.
package projectstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/model"
)

// Store is a thread-safe index of projects by external id.
type Store struct {
	mu    sync.RWMutex
	roots []model.Project
	byID  map[string]model.Project
}

// New creates an empty store.
func New() *Store {
	return &Store{byID: make(map[string]model.Project)}
}

// Replace indexes every project reachable from roots and swaps the result in
// atomically. On error the previous content is kept.
func (s *Store) Replace(ctx context.Context, roots ...model.Project) error {
	logger := ctxlog.FromContext(ctx)

	byID := make(map[string]model.Project)
	for _, root := range roots {
		if err := index(byID, root); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots = append([]model.Project(nil), roots...)
	s.byID = byID
	logger.Debug("Project store replaced.", "roots", len(roots), "projects", len(byID))
	return nil
}

func index(byID map[string]model.Project, p model.Project) error {
	id := p.ExternalID()
	if _, exists := byID[id]; exists {
		return fmt.Errorf("duplicate project id %q", id)
	}
	byID[id] = p

	children, err := p.OwnProjects()
	if err != nil {
		return fmt.Errorf("failed to list sub-projects of %q: %w", id, err)
	}
	for _, c := range children {
		if err := index(byID, c); err != nil {
			return err
		}
	}
	return nil
}

// FindProjectByExternalID returns the project with the given external id.
func (s *Store) FindProjectByExternalID(ctx context.Context, id string) (model.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	return p, ok
}

// Roots returns the root projects in load order.
func (s *Store) Roots(ctx context.Context) []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Project(nil), s.roots...)
}

// Len returns the number of indexed projects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byID)
}
