package services

import (
	"context"
	"encoding/json"
	"fmt"

	"levantd/pkg/compat"
	"levantd/pkg/domain"
)

type SavesRepository interface {
	List() ([]string, error)
	Load(filename string) ([]byte, error)
	Save(filename string, data []byte) error
	Delete(filename string) error
}

type saveService struct {
	repo SavesRepository
}

func NewSaveService(repo SavesRepository) *saveService {
	return &saveService{repo: repo}
}

func (s *saveService) ListSaves(ctx context.Context) ([]string, error) {
	return s.repo.List()
}

// LoadState reads a save of any vintage and returns it upgraded to the
// current schema. The stored bytes are never rewritten on load.
func (s *saveService) LoadState(ctx context.Context, filename string) (*domain.GameState, error) {
	data, err := s.repo.Load(filename)
	if err != nil {
		return nil, err
	}

	state, err := compat.Resolve(data)
	if err != nil {
		return nil, fmt.Errorf("resolving save %s: %w", filename, err)
	}
	return state, nil
}

func (s *saveService) SaveState(ctx context.Context, filename string, state domain.GameState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling state: %w", err)
	}
	return s.repo.Save(filename, data)
}

func (s *saveService) DeleteSave(ctx context.Context, filename string) error {
	return s.repo.Delete(filename)
}
