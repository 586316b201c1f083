package config

import (
	"context"
	"testing"

	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_BuildsHierarchy(t *testing.T) {
	decls := []*ProjectDecl{{
		ID:     "Root",
		Name:   "Root project",
		Params: []model.Parameter{{Name: "env.HOME", Value: "/home"}},
		Templates: []*SettingsDecl{{
			ID:     "Tmpl",
			Params: []model.Parameter{{Name: "tmpl.param", Value: "%env.HOME%"}},
		}},
		Projects: []*ProjectDecl{{
			ID: "Child",
			BuildTypes: []*SettingsDecl{{
				ID:        "Build",
				Name:      "Build it",
				Templates: []string{"Tmpl"},
				Options:   []model.Option{model.StringOption("branchFilter", "+:*")},
				Params:    []model.Parameter{{Name: "own", Value: "x"}},
			}},
		}},
	}}

	roots, err := Assemble(context.Background(), decls)

	require.NoError(t, err)
	require.Len(t, roots, 1)
	child := roots[0].Children()[0]
	assert.Equal(t, "Root project :: Child", child.FullName())

	bt := child.BuildTypes()[0]
	assert.Equal(t, "Root project :: Child :: Build it", bt.FullName())
	require.Len(t, bt.Templates(), 1)
	assert.Equal(t, "Tmpl", bt.Templates()[0].ExternalID())

	own, err := bt.OwnParameters()
	require.NoError(t, err)
	assert.Equal(t, []model.Parameter{{Name: "own", Value: "x"}}, own)
	assert.Equal(t, []model.Parameter{
		{Name: "env.HOME", Value: "/home"},
		{Name: "tmpl.param", Value: "%env.HOME%"},
		{Name: "own", Value: "x"},
	}, bt.Parameters())
}

func TestAssemble_AttachesToParentAcrossDeclarations(t *testing.T) {
	decls := []*ProjectDecl{
		{ID: "Child", Parent: "Root", Source: "child.hcl"},
		{ID: "Root", Source: "root.hcl"},
	}

	roots, err := Assemble(context.Background(), decls)

	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Root", roots[0].ExternalID())
	assert.Equal(t, "Child", roots[0].Children()[0].ExternalID())
}

func TestAssemble_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		decls   []*ProjectDecl
		wantErr string
	}{
		{
			name:    "missing id",
			decls:   []*ProjectDecl{{Source: "a.hcl"}},
			wantErr: "a.hcl: project without an id",
		},
		{
			name:    "duplicate project",
			decls:   []*ProjectDecl{{ID: "P"}, {ID: "P", Source: "b.hcl"}},
			wantErr: `b.hcl: duplicate project id "P"`,
		},
		{
			name: "duplicate build type",
			decls: []*ProjectDecl{{ID: "P", BuildTypes: []*SettingsDecl{
				{ID: "B", Source: "a.hcl"},
				{ID: "B", Source: "b.hcl"},
			}}},
			wantErr: `duplicate build configuration id "B" (first declared in a.hcl)`,
		},
		{
			name:    "unknown parent",
			decls:   []*ProjectDecl{{ID: "P", Parent: "Nope"}},
			wantErr: `unknown parent project "Nope"`,
		},
		{
			name:    "cycle",
			decls:   []*ProjectDecl{{ID: "A", Parent: "B"}, {ID: "B", Parent: "A"}},
			wantErr: "is one of its own sub-projects",
		},
		{
			name: "unknown template",
			decls: []*ProjectDecl{{ID: "P", BuildTypes: []*SettingsDecl{
				{ID: "B", Templates: []string{"T"}},
			}}},
			wantErr: `build type "B": unknown template "T"`,
		},
		{
			name: "template based on template",
			decls: []*ProjectDecl{{ID: "P", Templates: []*SettingsDecl{
				{ID: "T", Templates: []string{"U"}},
			}}},
			wantErr: `template "T" cannot be based on other templates`,
		},
		{
			name: "template from sibling project is not visible",
			decls: []*ProjectDecl{{ID: "P", Projects: []*ProjectDecl{
				{ID: "A", Templates: []*SettingsDecl{{ID: "T"}}},
				{ID: "B", BuildTypes: []*SettingsDecl{{ID: "X", Templates: []string{"T"}}}},
			}}},
			wantErr: `unknown template "T"`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Assemble(context.Background(), tc.decls)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}
