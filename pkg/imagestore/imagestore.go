// Package imagestore keeps uploaded email images in a flat directory under randomized names.
package imagestore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// MaxBytes is the largest accepted upload.
const MaxBytes = 16 << 20

// URLPrefix is where stored images are served.
const URLPrefix = "/static/uploads/"

var (
	ErrNoFile       = errors.New("no file selected")
	ErrExtension    = errors.New("file type not allowed")
	ErrTooLarge     = errors.New("file too large")
	ErrInvalidName  = errors.New("invalid filename")
	ErrNotFound     = errors.New("image not found")
	ErrDeleteFailed = errors.New("failed to delete image")
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// Store saves, lists and deletes images in one directory.
type Store struct {
	dir string
}

// New creates the upload directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// Allowed reports whether name carries an accepted image extension.
func Allowed(name string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(name))]
}

// Sanitize reduces an uploaded filename to a safe basename.
func Sanitize(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune('_')
		}
	}
	return strings.TrimLeft(b.String(), "._")
}

// Save stores r under a random prefix and returns the stored filename.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	if originalName == "" {
		return "", ErrNoFile
	}
	if !Allowed(originalName) {
		return "", ErrExtension
	}

	safe := Sanitize(originalName)
	if !Allowed(safe) || strings.TrimSuffix(safe, filepath.Ext(safe)) == "" {
		return "", ErrInvalidName
	}

	prefix, err := randomHex(8)
	if err != nil {
		return "", err
	}
	name := prefix + "_" + safe
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("create image: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, MaxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		os.Remove(path)
		return "", fmt.Errorf("write image: %w", err)
	case n > MaxBytes:
		os.Remove(path)
		return "", ErrTooLarge
	case closeErr != nil:
		os.Remove(path)
		return "", fmt.Errorf("close image: %w", closeErr)
	}

	return name, nil
}

// List returns stored image names in descending lexicographic order.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && Allowed(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// Delete removes a stored image.
func (s *Store) Delete(name string) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %w", ErrDeleteFailed, err)
	}
	return nil
}

// Open opens a stored image for reading.
func (s *Store) Open(name string) (*os.File, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		f.Close()
		return nil, ErrNotFound
	}
	return f, nil
}

// URL returns the public path of a stored image.
func URL(name string) string {
	return URLPrefix + name
}

func (s *Store) resolve(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", ErrInvalidName
	}
	if !Allowed(name) {
		return "", ErrExtension
	}
	return filepath.Join(s.dir, name), nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate name prefix: %w", err)
	}
	return hex.EncodeToString(b), nil
}
