package testutil

import "github.com/specialistvlad/usagesearch/internal/model"

// FailingSettings wraps settings whose build steps cannot be read.
type FailingSettings struct {
	model.Settings
	Err error
}

func (f FailingSettings) BuildRunners() ([]model.Runner, error) {
	return nil, f.Err
}

// ProjectWithExtras is a project that reports additional build types after
// its own, which lets tests inject settings the in-memory model cannot hold.
type ProjectWithExtras struct {
	*model.ProjectNode
	Extras []model.Settings
}

func (p ProjectWithExtras) OwnBuildTypes() ([]model.Settings, error) {
	own, err := p.ProjectNode.OwnBuildTypes()
	if err != nil {
		return nil, err
	}
	return append(own, p.Extras...), nil
}

// FailingProject is a project whose sub-projects cannot be listed.
type FailingProject struct {
	*model.ProjectNode
	Err error
}

func (p FailingProject) OwnProjects() ([]model.Project, error) {
	return nil, p.Err
}
