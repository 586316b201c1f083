package yamlconfig

import "gopkg.in/yaml.v3"

// Mapping fields are kept as nodes so their key order survives decoding.

type document struct {
	Projects []*projectDoc `yaml:"projects"`
}

type projectDoc struct {
	ID         string         `yaml:"id"`
	Name       string         `yaml:"name"`
	Parent     string         `yaml:"parent"`
	Params     yaml.Node      `yaml:"params"`
	Templates  []*settingsDoc `yaml:"templates"`
	BuildTypes []*settingsDoc `yaml:"build_types"`
	Projects   []*projectDoc  `yaml:"projects"`
}

type settingsDoc struct {
	ID                   string            `yaml:"id"`
	Name                 string            `yaml:"name"`
	Templates            []string          `yaml:"templates"`
	Options              yaml.Node         `yaml:"options"`
	Params               yaml.Node         `yaml:"params"`
	Steps                []*descriptorDoc  `yaml:"steps"`
	Features             []*descriptorDoc  `yaml:"features"`
	FailureConditions    []*descriptorDoc  `yaml:"failure_conditions"`
	SnapshotDependencies []*snapshotDepDoc `yaml:"snapshot_dependencies"`
	ArtifactDependencies []*artifactDepDoc `yaml:"artifact_dependencies"`
	Requirements         []*requirementDoc `yaml:"requirements"`
}

// descriptorDoc is a step, feature or failure condition. Type is kept as a
// node for its position, which orders features and failure conditions.
type descriptorDoc struct {
	ID     string    `yaml:"id"`
	Type   yaml.Node `yaml:"type"`
	Name   string    `yaml:"name"`
	Params yaml.Node `yaml:"params"`
}

type snapshotDepDoc struct {
	Source  string    `yaml:"source"`
	Options yaml.Node `yaml:"options"`
}

type artifactDepDoc struct {
	Source string `yaml:"source"`
	Paths  string `yaml:"paths"`
}

type requirementDoc struct {
	Property string  `yaml:"property"`
	Type     string  `yaml:"type"`
	Value    *string `yaml:"value"`
}
