package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"levantd/pkg/domain"
)

type fakeSavesRepository struct {
	files map[string][]byte
	err   error
}

func (f *fakeSavesRepository) List() ([]string, error) {
	names := make([]string, 0, len(f.files))
	for name := range f.files {
		names = append(names, name)
	}
	return names, f.err
}

func (f *fakeSavesRepository) Load(filename string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.files[filename]
	if !ok {
		return nil, domain.ErrSaveNotFound
	}
	return data, nil
}

func (f *fakeSavesRepository) Save(filename string, data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.files[filename] = data
	return nil
}

func (f *fakeSavesRepository) Delete(filename string) error {
	delete(f.files, filename)
	return f.err
}

func TestLoadStateUpgradesLegacySave(t *testing.T) {
	repo := &fakeSavesRepository{files: map[string][]byte{
		"old.json": []byte(`{
			"stat_schema": [{"key": "might", "label": "Might"}],
			"players": [{"id": "p1", "name": "East"}]
		}`),
	}}
	service := NewSaveService(repo)

	state, err := service.LoadState(context.Background(), "old.json")
	if err != nil {
		t.Fatal(err)
	}

	if len(state.RuleSets) != 1 || state.RuleSets[0].ID != domain.DefaultRuleSetID {
		t.Errorf("RuleSets = %+v, want synthesized default", state.RuleSets)
	}
	if len(state.Entities) != 1 || state.Entities[0].SchemaID != domain.DefaultRuleSetID {
		t.Errorf("Entities = %+v, want players hoisted and bound", state.Entities)
	}
}

func TestLoadStateDoesNotRewriteStoredBytes(t *testing.T) {
	original := []byte(`{"players": [{"id": "p1", "name": "East"}]}`)
	repo := &fakeSavesRepository{files: map[string][]byte{"old.json": original}}
	service := NewSaveService(repo)

	if _, err := service.LoadState(context.Background(), "old.json"); err != nil {
		t.Fatal(err)
	}

	if string(repo.files["old.json"]) != string(original) {
		t.Errorf("stored bytes rewritten on load: %s", repo.files["old.json"])
	}
}

func TestLoadStateMissing(t *testing.T) {
	service := NewSaveService(&fakeSavesRepository{files: map[string][]byte{}})

	if _, err := service.LoadState(context.Background(), "nope.json"); !errors.Is(err, domain.ErrSaveNotFound) {
		t.Errorf("LoadState error = %v, want ErrSaveNotFound", err)
	}
}

func TestLoadStateMalformedSave(t *testing.T) {
	repo := &fakeSavesRepository{files: map[string][]byte{"bad.json": []byte("not json")}}
	service := NewSaveService(repo)

	_, err := service.LoadState(context.Background(), "bad.json")
	if err == nil {
		t.Fatal("expected error for malformed save")
	}
	if !strings.Contains(err.Error(), "bad.json") {
		t.Errorf("error %q does not name the save", err)
	}
}

func TestSaveStateWritesIndentedJSON(t *testing.T) {
	repo := &fakeSavesRepository{files: map[string][]byte{}}
	service := NewSaveService(repo)

	state := domain.GameState{
		Entities: []domain.Entity{{ID: "e1", Name: "North", SchemaID: "a"}},
	}
	if err := service.SaveState(context.Background(), "world.json", state); err != nil {
		t.Fatal(err)
	}

	stored := repo.files["world.json"]
	if !json.Valid(stored) {
		t.Fatalf("stored bytes are not valid JSON: %s", stored)
	}
	if !strings.Contains(string(stored), "\n  ") {
		t.Errorf("stored bytes not indented: %s", stored)
	}

	var roundTrip domain.GameState
	if err := json.Unmarshal(stored, &roundTrip); err != nil {
		t.Fatal(err)
	}
	if roundTrip.Entities[0].Name != "North" {
		t.Errorf("round trip = %+v", roundTrip.Entities)
	}
}
