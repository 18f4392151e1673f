package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/younwookim/pacman/internal/fault"
)

// SourceEmbedded is reported when no configuration file was found.
const SourceEmbedded = "embedded"

// FlagKeys maps command line flag names to configuration keys. Flags not
// listed here are ignored by Load.
var FlagKeys = map[string]string{
	"tick-interval":  "loop.tick_interval",
	"debug":          "loop.debug",
	"reset-on-start": "playground.reset_on_start",
	"assets":         "assets.root",
	"font":           "assets.font",
	"log-level":      "log.level",
	"log-format":     "log.format",
	"record":         "replay.record",
}

// Loader builds a Config from the embedded defaults, at most one file and
// command line flags, in that order of precedence (last wins).
type Loader struct {
	// Candidates are tried in order when no explicit path is given.
	Candidates []string
}

// NewLoader returns a loader searching ~/.pacman/pacman.yaml and then
// ./configs/pacman.yaml.
func NewLoader() *Loader {
	var candidates []string
	if p := userConfigPath("pacman.yaml"); p != "" {
		candidates = append(candidates, p)
	}
	candidates = append(candidates, filepath.Join("configs", "pacman.yaml"))
	return &Loader{Candidates: candidates}
}

// Load is NewLoader().Load.
func Load(customPath string, flags *pflag.FlagSet) (*Config, string, error) {
	return NewLoader().Load(customPath, flags)
}

// Load layers the configuration and validates it. customPath, when set,
// must exist. It returns the file the configuration came from, or
// SourceEmbedded.
func (l *Loader) Load(customPath string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")
	if err := k.Load(embedded(defaultYAML), yaml.Parser()); err != nil {
		return nil, "", fault.ConfigLoad(SourceEmbedded, err)
	}

	source := SourceEmbedded
	if customPath != "" {
		if err := k.Load(file.Provider(customPath), yaml.Parser()); err != nil {
			return nil, "", fault.ConfigLoad(customPath, err)
		}
		source = customPath
	} else if p := l.find(); p != "" {
		if err := k.Load(file.Provider(p), yaml.Parser()); err != nil {
			return nil, "", fault.ConfigLoad(p, err)
		}
		source = p
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagValue(flags)), nil); err != nil {
			return nil, "", fault.ConfigLoad("flags", err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, "", fault.ConfigLoad(source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, source, nil
}

func (l *Loader) find() string {
	for _, p := range l.Candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// flagValue keeps only flags the user set and renames them to their keys.
func flagValue(flags *pflag.FlagSet) func(*pflag.Flag) (string, any) {
	return func(f *pflag.Flag) (string, any) {
		key, ok := FlagKeys[f.Name]
		if !ok || !f.Changed {
			return "", nil
		}
		return key, posflag.FlagVal(flags, f)
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pacman", filename)
}

// embedded serves the built-in YAML to koanf.
type embedded []byte

func (e embedded) ReadBytes() ([]byte, error) { return e, nil }

func (e embedded) Read() (map[string]any, error) {
	return nil, errors.New("embedded config requires a parser")
}
