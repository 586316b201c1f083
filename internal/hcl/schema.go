package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes all top-level blocks of a file. Anything other than a
// project block is rejected.
type fileRoot struct {
	Projects []*projectBlock `hcl:"project,block"`
}

// projectBlock is a `project` block. Nested projects are sub-projects.
type projectBlock struct {
	ID         string           `hcl:"id,label"`
	Name       string           `hcl:"name,optional"`
	Parent     string           `hcl:"parent,optional"`
	Params     hcl.Expression   `hcl:"params,optional"`
	Templates  []*settingsBlock `hcl:"template,block"`
	BuildTypes []*settingsBlock `hcl:"build_type,block"`
	Projects   []*projectBlock  `hcl:"project,block"`
}

// settingsBlock is a `build_type` or `template` block.
type settingsBlock struct {
	ID                string              `hcl:"id,label"`
	Name              string              `hcl:"name,optional"`
	Templates         []string            `hcl:"templates,optional"`
	Options           hcl.Expression      `hcl:"options,optional"`
	Params            hcl.Expression      `hcl:"params,optional"`
	Steps             []*descriptorBlock  `hcl:"step,block"`
	Features          []*descriptorBlock  `hcl:"feature,block"`
	FailureConditions []*descriptorBlock  `hcl:"failure_condition,block"`
	SnapshotDeps      []*snapshotDepBlock `hcl:"snapshot_dependency,block"`
	ArtifactDeps      []*artifactDepBlock `hcl:"artifact_dependency,block"`
	Requirements      []*requirementBlock `hcl:"requirement,block"`
}

// descriptorBlock is a `step`, `feature` or `failure_condition` block. Body
// locates the block so features and failure conditions keep their declared
// order.
type descriptorBlock struct {
	ID     string         `hcl:"id,label"`
	Type   string         `hcl:"type"`
	Name   string         `hcl:"name,optional"`
	Params hcl.Expression `hcl:"params,optional"`
	Body   hcl.Body       `hcl:",body"`
}

type snapshotDepBlock struct {
	Source  string         `hcl:"source,label"`
	Options hcl.Expression `hcl:"options,optional"`
}

type artifactDepBlock struct {
	Source string `hcl:"source,label"`
	Paths  string `hcl:"paths"`
}

type requirementBlock struct {
	Property string  `hcl:"property,label"`
	Type     string  `hcl:"type,optional"`
	Value    *string `hcl:"value,optional"`
}
