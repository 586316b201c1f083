package yamlconfig

import (
	"context"
	"testing"

	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/specialistvlad/usagesearch/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func load(t *testing.T, files map[string]string) ([]*config.ProjectDecl, error) {
	t.Helper()
	dir := testutil.WriteFiles(t, files)
	return NewLoader().Load(context.Background(), dir)
}

func TestLoader_FullProject(t *testing.T) {
	src := `
projects:
  - id: Root
    name: Root project
    params:
      env.JAVA_HOME: "%system.jdk%"
      retries: 3
    templates:
      - id: Gradle
        steps:
          - id: build
            type: gradle-runner
            params:
              ui.gradleRunner.gradle.tasks.names: "%gradle.tasks%"
    build_types:
      - id: Build
        templates: [Gradle]
        options:
          branchFilter: "+:%branch.spec%"
          cleanBuild: true
          labels: [a, "%label%"]
        params:
          zeta: "1"
          alpha: "%x%"
        features:
          - id: status
            type: commit-status-publisher
        failure_conditions:
          - id: message
            type: BuildFailureOnMessage
            params:
              stopBuildOnFailure: "%fail.fast%"
        snapshot_dependencies:
          - source: Compile
            options:
              run-build-on-the-same-agent: "%same.agent%"
        artifact_dependencies:
          - source: Compile
            paths: "%artifacts.dir%/*.jar"
        requirements:
          - property: teamcity.agent.jvm.os.name
            type: equals
            value: "%os%"
          - property: docker.server.version
            type: exists
    projects:
      - id: Child
`
	decls, err := load(t, map[string]string{"root.yaml": src})
	require.NoError(t, err)
	require.Len(t, decls, 1)

	root := decls[0]
	assert.Equal(t, "Root project", root.Name)
	assert.Equal(t, []model.Parameter{
		{Name: "env.JAVA_HOME", Value: "%system.jdk%"},
		{Name: "retries", Value: "3"},
	}, root.Params)

	require.Len(t, root.Templates, 1)
	require.Len(t, root.Templates[0].Runners, 1)
	assert.Equal(t, "gradle-runner", root.Templates[0].Runners[0].Type)

	bt := root.BuildTypes[0]
	assert.Equal(t, []string{"Gradle"}, bt.Templates)
	require.Len(t, bt.Options, 3)
	assert.Equal(t, "+:%branch.spec%", bt.Options[0].String())
	assert.True(t, bt.Options[1].Value.RawEquals(cty.True))
	assert.Equal(t, `["a","%label%"]`, bt.Options[2].String())
	assert.Equal(t, []model.Parameter{{Name: "zeta", Value: "1"}, {Name: "alpha", Value: "%x%"}}, bt.Params)

	require.Len(t, bt.Features, 2)
	assert.False(t, bt.Features[0].IsFailureCondition())
	assert.True(t, bt.Features[1].IsFailureCondition())
	assert.Equal(t, "%fail.fast%", bt.Features[1].Parameters[0].Value)

	require.Len(t, bt.Dependencies, 1)
	assert.Equal(t, "%same.agent%", bt.Dependencies[0].Options[0].String())
	assert.Equal(t, "%artifacts.dir%/*.jar", bt.ArtifactDependencies[0].SourcePaths)
	assert.Equal(t, "%os%", bt.Requirements[0].PropertyValue())
	assert.Nil(t, bt.Requirements[1].Value)

	require.Len(t, root.Projects, 1)
	assert.Equal(t, "Child", root.Projects[0].ID)
}

func TestLoader_FeaturesKeepDeclaredOrder(t *testing.T) {
	decls, err := load(t, map[string]string{"main.yaml": `
projects:
  - id: Root
    build_types:
      - id: Build
        failure_conditions:
          - id: message
            type: BuildFailureOnMessage
        features:
          - id: status
            type: commit-status-publisher
          - {id: perf, type: perfmon}
`})
	require.NoError(t, err)

	features := decls[0].BuildTypes[0].Features
	require.Len(t, features, 3)
	assert.Equal(t, "message", features[0].ID)
	assert.True(t, features[0].IsFailureCondition())
	assert.Equal(t, "status", features[1].ID)
	assert.Equal(t, "perfmon", features[2].Type)
	assert.Equal(t, model.FeatureGeneral, features[2].Kind)
}

func TestLoader_MultipleDocumentsAndExtensions(t *testing.T) {
	decls, err := load(t, map[string]string{
		"a.yaml": "projects:\n  - id: A\n---\nprojects:\n  - id: B\n    parent: A\n",
		"b.yml":  "projects:\n  - id: C\n",
		"c.json": `{"projects": [{"id": "Ignored"}]}`,
		"d.yaml": "",
	})
	require.NoError(t, err)

	var ids []string
	for _, d := range decls {
		ids = append(ids, d.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, ids)
	assert.Equal(t, "A", decls[1].Parent)
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr string
	}{
		{"invalid yaml", "projects: [", "failed to decode YAML file"},
		{"unknown field", "projects:\n  - id: A\n    colour: red\n", "failed to decode YAML file"},
		{"project without id", "projects:\n  - name: A\n", "project without id"},
		{"params not a mapping", "projects:\n  - id: A\n    params: [x]\n", "params must be a mapping"},
		{"param value not scalar", "projects:\n  - id: A\n    params:\n      a: [x]\n", "must be a scalar"},
		{"step without type", "projects:\n  - id: A\n    build_types:\n      - id: B\n        steps:\n          - id: s\n", "missing type"},
		{"feature type not a string", "projects:\n  - id: A\n    build_types:\n      - id: B\n        features:\n          - id: f\n            type: [x]\n", "type must be a string"},
		{"requirement without property", "projects:\n  - id: A\n    build_types:\n      - id: B\n        requirements:\n          - type: exists\n", "requirement without property"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, map[string]string{"main.yaml": tc.src})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestToCty(t *testing.T) {
	decls, err := load(t, map[string]string{"main.yaml": `
projects:
  - id: A
    build_types:
      - id: B
        options:
          int: 42
          float: 1.5
          empty:
          nan: .nan
          nested: { k: v }
`})
	require.NoError(t, err)

	opts := decls[0].BuildTypes[0].Options
	require.Len(t, opts, 5)
	assert.Equal(t, "42", opts[0].String())
	assert.Equal(t, "1.5", opts[1].String())
	assert.Equal(t, "", opts[2].String())
	assert.Equal(t, ".nan", opts[3].String())
	assert.Equal(t, `{"k":"v"}`, opts[4].String())
}
