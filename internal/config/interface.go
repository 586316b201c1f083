package config

import (
	"context"

	"github.com/specialistvlad/usagesearch/internal/model"
)

// Loader is the interface for a format-specific project loader.
type Loader interface {
	// Load reads every file of its format found under paths and translates
	// the projects they declare into the format-agnostic declarations. Paths
	// that do not exist are skipped.
	Load(ctx context.Context, paths ...string) ([]*ProjectDecl, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(ctx context.Context, paths ...string) ([]*ProjectDecl, error)

func (f LoaderFunc) Load(ctx context.Context, paths ...string) ([]*ProjectDecl, error) {
	return f(ctx, paths...)
}

// Chain returns a Loader that runs every loader over the same paths and
// concatenates their declarations in loader order.
func Chain(loaders ...Loader) Loader {
	return LoaderFunc(func(ctx context.Context, paths ...string) ([]*ProjectDecl, error) {
		var decls []*ProjectDecl
		for _, l := range loaders {
			d, err := l.Load(ctx, paths...)
			if err != nil {
				return nil, err
			}
			decls = append(decls, d...)
		}
		return decls, nil
	})
}

// LoadProjects loads declarations with loader and assembles them into
// project hierarchies.
func LoadProjects(ctx context.Context, loader Loader, paths ...string) ([]*model.ProjectNode, error) {
	decls, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, err
	}
	return Assemble(ctx, decls)
}
