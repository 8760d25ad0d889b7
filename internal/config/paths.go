package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the optional config file searched for by FindConfigPath.
const ConfigFileName = ".cukereport.yml"

// FindConfigPath searches upward from a directory for a config file. The
// returned error wraps fs.ErrNotExist when no file exists.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s found in %s or parent directories: %w", ConfigFileName, abs, fs.ErrNotExist)
		}
		dir = parent
	}
}

// Resolve loads the config at path, or the nearest config above startDir
// when path is empty. Defaults are returned when no file exists.
func Resolve(path, startDir string) (Config, string, error) {
	if strings.TrimSpace(path) == "" {
		found, err := FindConfigPath(startDir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Default(), "", nil
			}
			return Config{}, "", err
		}
		path = found
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}
