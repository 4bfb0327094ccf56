package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "linkwalk.yaml"

// Load reads the configuration and validates it.
// Search order: customPath -> ~/.linkwalk/config.yaml -> ./configs/linkwalk.yaml -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func Load(customPath string) (Config, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

func load(customPath string) (Config, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg, err := Parse(data)
			if err != nil {
				return cfg, userCfgPath, fmt.Errorf("failed to parse config %s: %w", userCfgPath, err)
			}
			return cfg, userCfgPath, nil
		}
	}

	localPath := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		cfg, err := Parse(data)
		if err != nil {
			return cfg, localPath, fmt.Errorf("failed to parse config %s: %w", localPath, err)
		}
		return cfg, localPath, nil
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), "builtin", nil
	}
	return cfg, "embedded", nil
}

// Parse decodes YAML on top of Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linkwalk", "config.yaml")
}
