package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileName is the optional project configuration file at the root.
	ConfigFileName = "performer.yaml"
	// DefaultSystemDir holds project internals (sqlite database, definitions).
	DefaultSystemDir = ".performer"
	// DefaultAdapter is used when neither options nor the config file name one.
	DefaultAdapter = "fs"
)

// FileConfig is the shape of performer.yaml.
type FileConfig struct {
	Adapter       string            `yaml:"adapter,omitempty"`
	DSN           string            `yaml:"dsn,omitempty"`
	Locale        string            `yaml:"locale,omitempty"`
	Currency      string            `yaml:"currency,omitempty"`
	HelpersDir    string            `yaml:"helpers_dir,omitempty"`
	PerformersDir string            `yaml:"performers_dir,omitempty"`
	Routes        map[string]string `yaml:"routes,omitempty"`
}

// LoadConfig reads a config file. A missing file yields an empty config.
func LoadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// resolve fills unset options from the config file of root, then from defaults.
// Relative directories are taken relative to root.
func (o *options) resolve(root string) error {
	path := o.configFile
	if path == "" {
		path = filepath.Join(root, ConfigFileName)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	o.adapter = firstNonEmpty(o.adapter, cfg.Adapter, DefaultAdapter)
	o.systemDir = firstNonEmpty(o.systemDir, DefaultSystemDir)
	o.locale = firstNonEmpty(o.locale, cfg.Locale)
	o.currency = firstNonEmpty(o.currency, cfg.Currency)
	o.dsn = dsnInRoot(root, firstNonEmpty(o.dsn, cfg.DSN, filepath.Join(o.systemDir, "performer.db")))
	o.helpersDir = inRoot(root, firstNonEmpty(o.helpersDir, cfg.HelpersDir, filepath.Join(o.systemDir, "helpers")))
	o.performersDir = inRoot(root, firstNonEmpty(o.performersDir, cfg.PerformersDir, filepath.Join(o.systemDir, "performers")))
	if o.routes == nil {
		o.routes = cfg.Routes
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// dsnInRoot resolves a plain database file path like a directory.
// ":memory:" and file: URIs are used as given.
func dsnInRoot(root, dsn string) string {
	if dsn == ":memory:" || strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	return inRoot(root, dsn)
}

func inRoot(root, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(root, dir)
}
