// Package profile loads named core API connection profiles from YAML.
// Profiles are a CLI/TUI convenience only; the bridge itself always takes
// base URL and token as plain arguments.
package profile

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/opsdeck/opsdeck/internal/domain"
)

// Profile is one named way to reach a core API.
type Profile struct {
	Name        string
	BaseURL     string
	Token       string
	LenientJSON bool
}

// Loader reads profiles from a directory (default ~/.opsdeck). Tokens may be
// kept out of the main file in a secrets overlay that wins on conflict.
type Loader struct {
	dir         string
	file        string
	secretsFile string
}

type Option func(*Loader)

func WithFile(name string) Option {
	return func(l *Loader) { l.file = name }
}

func WithSecretsFile(name string) Option {
	return func(l *Loader) { l.secretsFile = name }
}

func NewLoader(dir string, opts ...Option) *Loader {
	l := &Loader{
		dir:         dir,
		file:        "profiles.yaml",
		secretsFile: "secrets.local.yaml",
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultDir is where profiles live unless overridden: ~/.opsdeck.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".opsdeck"
	}
	return filepath.Join(home, ".opsdeck")
}

// Load resolves a profile by name. An empty name selects the file's default
// profile; with no file-level default either, "default" is tried.
func (l *Loader) Load(name string) (Profile, error) {
	path := filepath.Join(l.dir, l.file)

	base, err := readProfiles(path)
	if err != nil {
		return Profile{}, err
	}

	// Secrets are optional; they override base fields per profile.
	secretsPath := filepath.Join(l.dir, l.secretsFile)
	secrets, secErr := readProfilesOptional(secretsPath)
	if secErr != nil {
		return Profile{}, secErr
	}

	selected := strings.TrimSpace(name)
	if selected == "" {
		selected = base.Default
	}
	if selected == "" {
		selected = "default"
	}

	entry, ok := base.Profiles[selected]
	if !ok {
		return Profile{}, &domain.OpError{
			Op:   "profile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  domain.ErrNotFound,
		}
	}

	if sec, ok := secrets.Profiles[selected]; ok {
		entry = overlay(entry, sec)
	}

	return Profile{
		Name:        selected,
		BaseURL:     entry.BaseURL,
		Token:       entry.Token,
		LenientJSON: entry.LenientJSON != nil && *entry.LenientJSON,
	}, nil
}

type yamlProfile struct {
	BaseURL     string `yaml:"base_url"`
	Token       string `yaml:"token"`
	LenientJSON *bool  `yaml:"lenient_json"`
}

type yamlFile struct {
	Default  string                 `yaml:"default"`
	Profiles map[string]yamlProfile `yaml:"profiles"`
}

func overlay(base, over yamlProfile) yamlProfile {
	if over.BaseURL != "" {
		base.BaseURL = over.BaseURL
	}
	if over.Token != "" {
		base.Token = over.Token
	}
	if over.LenientJSON != nil {
		base.LenientJSON = over.LenientJSON
	}
	return base
}

func readProfiles(path string) (yamlFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return yamlFile{}, &domain.OpError{
			Op:   "profile.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlFile
	if err := yaml.Unmarshal(b, &y); err != nil {
		return yamlFile{}, &domain.OpError{
			Op:   "profile.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if y.Profiles == nil {
		y.Profiles = map[string]yamlProfile{}
	}
	return y, nil
}

func readProfilesOptional(path string) (yamlFile, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return yamlFile{Profiles: map[string]yamlProfile{}}, nil
		}
		return yamlFile{}, &domain.OpError{
			Op:   "profile.secrets",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return readProfiles(path)
}
