package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

var (
	ErrIsDir            = errors.New("path is a directory")
	ErrUnknownFileState = errors.New("unknown file state")
)

// GetPath returns the path to filename in the user's config directory.
// It checks $XDG_CONFIG_HOME first, then falls back to ~/.config, and finally
// to a temp directory.
func GetPath(filename string) string {
	if xdgHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok && xdgHome != "" {
		return filepath.Join(xdgHome, "pagedots", filename)
	}

	usrHome, err := os.UserHomeDir()
	if err == nil && usrHome != "" {
		return filepath.Join(usrHome, ".config", "pagedots", filename)
	}

	tmpPath := filepath.Join(os.TempDir(), "pagedots", filename)

	slog.Warn("could not determine user config directory, using temp path",
		slog.String("path", tmpPath),
		slog.Any("error", fmt.Errorf("$XDG_CONFIG_HOME is unset, fall back to home directory: %w", err)),
	)

	return tmpPath
}

// ReadFile reads a regular file from disk.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	switch {
	case info.IsDir():
		return nil, fmt.Errorf("%s: %w", path, ErrIsDir)
	case !info.Mode().IsRegular():
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFileState)
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: Potential file inclusion via variable.
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// WriteFile writes data to path, creating parent directories as needed.
// An existing file is left alone, unless force is set, in which case it is
// renamed to a timestamped backup first. It reports whether data was written.
func WriteFile(path string, data []byte, force bool) (bool, error) {
	exists := false

	info, err := os.Stat(path)
	if info != nil {
		switch {
		case err == nil && info.Mode().IsRegular():
			exists = true
		case info.IsDir():
			return false, fmt.Errorf("%s: %w", path, ErrIsDir)
		default:
			return false, fmt.Errorf("%s: %w", path, ErrUnknownFileState)
		}
	}

	if exists && !force {
		slog.Debug("file already exists, skipping write",
			slog.String("path", path),
		)

		return false, nil
	}

	err = os.MkdirAll(filepath.Dir(path), 0o700)
	if err != nil {
		return false, fmt.Errorf("create directories: %w", err)
	}

	if exists {
		backupFile := fmt.Sprintf("%s.%d.old", filepath.Base(path), time.Now().UnixNano())
		backupPath := filepath.Join(filepath.Dir(path), backupFile)

		slog.Info("backing up existing file",
			slog.String("path", backupPath),
		)

		err = os.Rename(path, backupPath)
		if err != nil {
			return false, fmt.Errorf("rename existing file to backup: %w", err)
		}
	}

	slog.Info("write file",
		slog.String("path", path),
	)

	err = os.WriteFile(path, data, 0o600)
	if err != nil {
		return false, fmt.Errorf("write file: %w", err)
	}

	return true, nil
}
