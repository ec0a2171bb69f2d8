package configfinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/wenzisay/localdate/internal/domain"
)

// FileName is the configuration file searched for by Finder.
const FileName = "localdate.yaml"

// Finder locates the directory holding localdate.yaml by searching upward.
type Finder struct {
	ConfigFile string // defaults to "localdate.yaml"
}

func NewFinder() *Finder {
	return &Finder{ConfigFile: FileName}
}

func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("startDir is empty"),
		}
	}

	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{
			Op:   "configfinder.findroot",
			Kind: domain.KindExecution,
			Err:  err,
		}
	}

	// A file path searches from its directory.
	info, statErr := os.Stat(abs)
	if statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	name := f.ConfigFile
	if name == "" {
		name = FileName
	}

	cur := filepath.Clean(abs)
	for {
		if _, err := os.Stat(filepath.Join(cur, name)); err == nil {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &domain.OpError{
				Op:   "configfinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}
		}
		cur = parent
	}
}

// Resolve returns the configuration in effect for startDir. An explicit path must
// exist; otherwise the nearest localdate.yaml upward is used, and defaults apply
// when there is none. The returned path is empty when defaults were used.
func (f *Finder) Resolve(startDir, explicit string) (domain.Config, string, error) {
	if explicit != "" {
		path, err := filepath.Abs(explicit)
		if err != nil {
			return domain.DefaultConfig(), "", &domain.OpError{
				Op:   "configfinder.resolve",
				Kind: domain.KindExecution,
				Path: explicit,
				Err:  err,
			}
		}
		cfg, err := LoadConfig(path)
		return cfg, path, err
	}

	root, err := f.FindRoot(startDir)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	name := f.ConfigFile
	if name == "" {
		name = FileName
	}
	path := filepath.Join(root, name)
	cfg, err := LoadConfig(path)
	return cfg, path, err
}
