// Package platform wraps the host capabilities the client consumes:
// clipboard access, opening a browsing context, and one-shot local saves.
// Everything is exposed as plain functions so session wiring can substitute
// fakes in tests.
package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// ReadClipboard reads the platform clipboard.
func ReadClipboard() (string, error) {
	return clipboard.ReadAll()
}

// WriteClipboard writes text to the platform clipboard.
func WriteClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// OpenURL opens the URL in a new browsing context (the default browser).
func OpenURL(u string) error {
	return browser.OpenURL(u)
}

// maxSaveAttempts bounds the collision-suffix search in SaveFile.
const maxSaveAttempts = 100

// SaveFile writes data into dir under the suggested name, never
// overwriting: on collision a numeric suffix is inserted before the
// extension ("report.pdf" -> "report.1.pdf"). Returns the path written.
//
// The name is reduced to its base component so a backend-supplied filename
// cannot escape dir.
func SaveFile(dir, name string, data []byte) (string, error) {
	name = filepath.Base(name)
	if name == "" || name == "." || name == ".." || name == string(filepath.Separator) {
		return "", fmt.Errorf("unusable filename %q", name)
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	ext := filepath.Ext(name)
	stem := name[:len(name)-len(ext)]

	for i := range maxSaveAttempts {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s.%d%s", stem, i, ext)
		}
		path := filepath.Join(dir, candidate)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("cannot create %s: %w", path, err)
		}
		if _, err := f.Write(data); err != nil {
			_ = f.Close()
			_ = os.Remove(path)
			return "", fmt.Errorf("cannot write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("cannot close %s: %w", path, err)
		}
		return path, nil
	}
	return "", fmt.Errorf("too many files named %s in %s", name, dir)
}

// Saver returns a save function bound to dir, matching the session layer's
// Saver capability signature.
func Saver(dir string) func(name string, data []byte) (string, error) {
	return func(name string, data []byte) (string, error) {
		return SaveFile(dir, name, data)
	}
}
