package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the shape of peacock.yaml, the optional config file that
// saves a project from repeating the same flags on every invocation.
// Anything also settable by a flag is overridden by that flag when both
// are present.
type fileConfig struct {
	Grammar     string `yaml:"grammar"`
	Entry       string `yaml:"entry"`
	PackageName string `yaml:"package"`
	Output      string `yaml:"output"`
	Seed        uint64 `yaml:"seed"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// resolveGrammarPath picks the grammar document to load: the positional
// argument when given, falling back to peacock.yaml's "grammar" field
// (SPEC_FULL.md §6) so a project can fix its grammar path once instead of
// repeating it on every invocation.
func resolveGrammarPath(args []string, cfg fileConfig, configPath string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Grammar != "" {
		return cfg.Grammar, nil
	}
	return "", fmt.Errorf("no grammar file given: pass one as an argument or set \"grammar\" in %s", configPath)
}
