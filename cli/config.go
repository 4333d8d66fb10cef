package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Defaults are optional CLI defaults read from a YAML file.
// Flags and environment variables take precedence over these values.
type Defaults struct {
	Algorithm       string   `yaml:"algorithm"`
	Output          string   `yaml:"output"`
	ExcludeBasename []string `yaml:"exclude-basename"`
}

const defaultsFileName = `.verisum.yaml`

// loadDefaults reads the defaults file. Resolution order: --defaults flag,
// then VERISUM_CONFIG, then ./.verisum.yaml. A missing file yields
// zero-value defaults, a malformed file is an error.
func loadDefaults() (Defaults, error) {
	var defaults Defaults

	path := argDefaultsFile
	if path == "" {
		path = EnvOr(`VERISUM_CONFIG`, defaultsFileName)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return defaults, err
	}
	if err := yaml.UnmarshalStrict(raw, &defaults); err != nil {
		return defaults, fmt.Errorf(`could not parse defaults file '%s': %s`, path, err)
	}
	return defaults, nil
}
