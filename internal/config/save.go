package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SaveTheme sets the top-level `theme:` key in config.yml, keeping the other
// settings, and writes the file atomically. It returns the path written.
func SaveTheme(theme string) (string, error) {
	theme = strings.TrimSpace(theme)
	if theme == "" {
		theme = "default"
	}

	path, err := Path()
	if err != nil {
		return "", err
	}

	// No env binding here: only file values and the new theme are written.
	v := newFileViper(path)
	var mode os.FileMode = 0o644
	if err := v.ReadInConfig(); err != nil {
		if !isNotExist(err) {
			return "", fmt.Errorf("parse %s: %w", path, err)
		}
	} else if st, serr := os.Stat(path); serr == nil {
		mode = st.Mode().Perm()
	}
	v.Set("theme", theme)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, "config-*.yml")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if err := tmp.Close(); err != nil {
		return "", err
	}

	if err := v.WriteConfigAs(tmpPath); err != nil {
		return "", fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("rename temp config: %w", err)
	}

	return path, nil
}
