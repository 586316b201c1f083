package yamlconfig

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions the loader picks up.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML project loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every YAML file found under paths and returns the project
// declarations in file and document order. Unknown fields are rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*config.ProjectDecl, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, Extensions...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	var decls []*config.ProjectDecl
	for _, file := range files {
		fileDecls, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded YAML file.", "file", file, "projects", len(fileDecls))
		decls = append(decls, fileDecls...)
	}

	logger.Debug("YAML loading complete.", "projects", len(decls))
	return decls, nil
}

func (l *Loader) loadFile(file string) ([]*config.ProjectDecl, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file %s: %w", file, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var decls []*config.ProjectDecl
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", file, err)
		}
		for _, p := range doc.Projects {
			decl, err := translateProject(file, p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			decls = append(decls, decl)
		}
	}
	return decls, nil
}
