// Package configpaths resolves where hookmap keeps its rules file and where
// layered CLI configuration is looked up.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultRulesFile is the rules file name placed beside the executable.
const DefaultRulesFile = "hookmap.rules.json"

// DefaultRulesPath returns the default rules file location: next to the
// executable, falling back to the working directory when the executable
// path cannot be resolved.
func DefaultRulesPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultRulesFile
	}
	return filepath.Join(filepath.Dir(exe), DefaultRulesFile)
}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, "hookmap"), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "hookmap"), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", "hookmap"), nil
		}
		return "", errors.New("HOME not set")
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return os.MkdirAll(dir, 0o755)
}

// ConfigCandidatePaths builds candidate paths for CLI config files per
// format. If userPath is provided, it is prioritized and routed to the
// matching loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	wd, _ := os.Getwd()
	dirs := []string{wd}
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Dir(exe))
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}

	for _, dir := range dirs {
		add(&jsonPaths, filepath.Join(dir, "hookmap.json"))
		add(&yamlPaths, filepath.Join(dir, "hookmap.yaml"))
		add(&yamlPaths, filepath.Join(dir, "hookmap.yml"))
		add(&tomlPaths, filepath.Join(dir, "hookmap.toml"))
	}

	return
}
