package helper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// DefinitionExtensions are the file types a definition may be written in.
var DefinitionExtensions = []string{".yaml", ".yml"}

// Definition is one discovered file. The file body is optional YAML.
type Definition struct {
	File       string         `yaml:"-"`
	Identifier string         `yaml:"-"`
	Options    map[string]any `yaml:"options"`
}

// Factory builds a module from its definition.
type Factory func(def Definition) (Module, error)

// Catalog is the compile-time list of loadable modules keyed by type identifier.
type Catalog map[string]Factory

// Names returns the catalog keys, sorted.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScanDefinitions reads every file in dir, sorted by file name. Dotfiles and
// subdirectories are skipped; any other file that is not YAML is a *BootstrapError.
// A missing directory yields no definitions.
func ScanDefinitions(dir string) ([]Definition, error) {
	if dir == "" {
		return nil, nil
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, &BootstrapError{File: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, &BootstrapError{File: dir, Err: fmt.Errorf("not a directory")}
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "*", doublestar.WithFilesOnly())
	if err != nil {
		return nil, &BootstrapError{File: dir, Err: err}
	}
	sort.Strings(matches)

	defs := make([]Definition, 0, len(matches))
	for _, name := range matches {
		if strings.HasPrefix(name, ".") {
			continue
		}
		file := filepath.Join(dir, name)

		id, err := Classify(name)
		if err != nil {
			return nil, &BootstrapError{File: file, Err: err}
		}
		if !isDefinitionFile(name) {
			return nil, &BootstrapError{
				File:       file,
				Identifier: id,
				Err:        fmt.Errorf("unsupported definition file type %q", filepath.Ext(name)),
			}
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return nil, &BootstrapError{File: file, Identifier: id, Err: err}
		}

		var def Definition
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, &BootstrapError{File: file, Identifier: id, Err: fmt.Errorf("invalid definition: %w", err)}
		}
		def.File = file
		def.Identifier = id
		defs = append(defs, def)
	}
	return defs, nil
}

func isDefinitionFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, allowed := range DefinitionExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Discover resolves every definition file in dir against catalog.
// A file without a matching catalog entry is a *BootstrapError.
func Discover(dir string, catalog Catalog) ([]Module, error) {
	defs, err := ScanDefinitions(dir)
	if err != nil {
		return nil, err
	}

	modules := make([]Module, 0, len(defs))
	for _, def := range defs {
		factory, ok := catalog[def.Identifier]
		if !ok {
			return nil, &BootstrapError{
				File:       def.File,
				Identifier: def.Identifier,
				Err:        fmt.Errorf("no helper module named %s", def.Identifier),
			}
		}
		m, err := factory(def)
		if err != nil {
			return nil, &BootstrapError{File: def.File, Identifier: def.Identifier, Err: err}
		}
		modules = append(modules, m)
	}
	return modules, nil
}
