// Package dotdir manages the .studyforge/ and ~/.studyforge directories.
//
// The dot directory holds the config.toml file, the default sqlite database,
// credentials, and the last-record state used by CLI commands to refer to the
// most recently created record.
package dotdir

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// dirName is the name of the studyforge directory.
	dirName = ".studyforge"
)

type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// Target returns the target absolute path to a .studyforge/ directory.
// Order of precedence is as follows:
//  1. Provided override (created if missing)
//  2. Local ./.studyforge/ dir
//  3. Home ~/.studyforge/ dir
//
// Returns an empty string when no override is given and neither a local nor
// a home directory exists. Callers that need a directory create one via
// "studyforge init" semantics.
func (m *Manager) Target(overrideDir string) (string, error) {
	if overrideDir != "" {
		if err := os.MkdirAll(overrideDir, 0o755); err != nil {
			return "", fmt.Errorf("creating studyforge directory %s: %w", overrideDir, err)
		}
		return filepath.Abs(overrideDir)
	}

	if m.localDirExists() {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return filepath.Abs(filepath.Join(cwd, dirName))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	dir := filepath.Join(home, dirName)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return "", nil
	}

	return filepath.Abs(dir)
}

// localDirExists checks whether a .studyforge/ directory exists in the
// current working directory.
func (m *Manager) localDirExists() bool {
	cwd, err := os.Getwd()
	if err != nil {
		return false
	}

	info, err := os.Stat(filepath.Join(cwd, dirName))
	return err == nil && info.IsDir()
}
