package cmd

import (
	"fmt"
	"os"
	"path"

	uarengine "github.com/lighthouse-iam/uar-engine"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk uar.yaml shape: per-run risk thresholds and column
// mapping overrides for the SoT file and each named satellite system.
type Config struct {
	DormancyDays       int                         `yaml:"dormancyDays"`
	PrivilegedKeywords []string                    `yaml:"privilegedKeywords"`
	SoTColumnMap       *uarengine.ColumnMap        `yaml:"sotColumnMap"`
	Satellites         map[string]SatelliteConfig  `yaml:"satellites"`
}

// SatelliteConfig holds the per-system column map override, keyed by the
// system name passed to the join command.
type SatelliteConfig struct {
	ColumnMap *uarengine.ColumnMap `yaml:"columnMap"`
}

// LoadConfig reads uar.yaml from the active --directory. A missing file is
// not an error: every field defaults to inference/engine defaults.
func LoadConfig() (Config, error) {
	configFilename := path.Join(directory, "uar.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, nil
	}

	raw, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", configFilename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", configFilename, err)
	}
	return cfg, nil
}

// satelliteColumnMap looks up the column map override for a named system,
// returning nil (use inference) when the system has no configured entry.
func (c Config) satelliteColumnMap(systemName string) *uarengine.ColumnMap {
	sc, ok := c.Satellites[systemName]
	if !ok {
		return nil
	}
	return sc.ColumnMap
}
