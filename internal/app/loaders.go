package app

import (
	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/hcl"
	"github.com/specialistvlad/usagesearch/internal/yamlconfig"
)

// DefaultLoader reads HCL and YAML project files. Declarations from both
// formats are assembled together, so a YAML project may name an HCL parent.
func DefaultLoader() config.Loader {
	return config.Chain(hcl.NewLoader(), yamlconfig.NewLoader())
}
