package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"levantd/pkg/domain"
)

// legacySaveName is the pre-packaging default save that may still live
// next to the binary instead of inside the saves directory.
const legacySaveName = "savegame.json"

type savesRepository struct {
	dir string
}

// NewSavesRepository creates the saves directory if needed and returns a
// repository over it.
func NewSavesRepository(dir string) (*savesRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating saves directory: %w", err)
	}
	return &savesRepository{dir: dir}, nil
}

func (s *savesRepository) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading saves directory: %w", err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		return entry.Name(), !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json")
	})
	sort.Strings(files)
	return files, nil
}

func (s *savesRepository) Load(filename string) ([]byte, error) {
	if err := validateFilename(filename); err != nil {
		return nil, err
	}

	path := filepath.Join(s.dir, filename)
	if filename == legacySaveName {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			if _, rootErr := os.Stat(legacySaveName); rootErr == nil {
				path = legacySaveName
			}
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, filename)
	}
	if err != nil {
		return nil, fmt.Errorf("reading save file: %w", err)
	}
	return data, nil
}

func (s *savesRepository) Save(filename string, data []byte) error {
	if err := validateFilename(filename); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return fmt.Errorf("writing save file: %w", err)
	}
	return nil
}

func (s *savesRepository) Delete(filename string) error {
	if err := validateFilename(filename); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, filename))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", domain.ErrSaveNotFound, filename)
	}
	if err != nil {
		return fmt.Errorf("deleting save file: %w", err)
	}
	return nil
}

// validateFilename rejects path traversal before any file access.
func validateFilename(filename string) error {
	if filename == "" ||
		strings.Contains(filename, "..") ||
		strings.ContainsAny(filename, `/\`) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidFilename, filename)
	}
	return nil
}
