package configinit

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/wenzisay/localdate/internal/domain"
)

//go:embed templates/localdate.yaml
var templatesFS embed.FS

const templateName = "templates/localdate.yaml"

type Initializer struct {
	FileName string // defaults to "localdate.yaml"
}

func NewInitializer() *Initializer {
	return &Initializer{FileName: "localdate.yaml"}
}

// Init writes the starter configuration into dir. An existing file is left
// untouched unless force is set; written reports which happened.
func (i *Initializer) Init(dir string, force bool) (path string, written bool, err error) {
	name := i.FileName
	if name == "" {
		name = "localdate.yaml"
	}
	path = filepath.Join(filepath.Clean(dir), name)

	if !force {
		if _, statErr := os.Stat(path); statErr == nil {
			return path, false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, false, &domain.OpError{Op: "configinit.init", Kind: domain.KindExecution, Path: path, Err: err}
	}

	b, err := templatesFS.ReadFile(templateName)
	if err != nil {
		return path, false, &domain.OpError{Op: "configinit.init", Kind: domain.KindExecution, Err: err}
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return path, false, &domain.OpError{Op: "configinit.init", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return path, true, nil
}
