package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"levantd/pkg/domain"
)

type fakeStateService struct {
	state    *domain.GameState
	err      error
	gotName  string
	gotState *domain.GameState
}

func (f *fakeStateService) LoadState(_ context.Context, filename string) (*domain.GameState, error) {
	f.gotName = filename
	return f.state, f.err
}

func (f *fakeStateService) SaveState(_ context.Context, filename string, state domain.GameState) error {
	f.gotName = filename
	f.gotState = &state
	return f.err
}

func TestStateLoad(t *testing.T) {
	service := &fakeStateService{state: &domain.GameState{
		RuleSets: []domain.RuleSet{{ID: "default", Name: "通用实体"}},
	}}
	h := NewState(service)

	rec := httptest.NewRecorder()
	h.Load(rec, httptest.NewRequest(http.MethodGet, "/api/state?filename=world.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if service.gotName != "world.json" {
		t.Errorf("filename = %q", service.gotName)
	}

	var got domain.GameState
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if len(got.RuleSets) != 1 || got.RuleSets[0].ID != "default" {
		t.Errorf("RuleSets = %+v", got.RuleSets)
	}
}

func TestStateLoadMissingFilename(t *testing.T) {
	h := NewState(&fakeStateService{})

	rec := httptest.NewRecorder()
	h.Load(rec, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestStateLoadErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid filename", domain.ErrInvalidFilename, http.StatusBadRequest},
		{"not found", domain.ErrSaveNotFound, http.StatusNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := NewState(&fakeStateService{err: test.err})

			rec := httptest.NewRecorder()
			h.Load(rec, httptest.NewRequest(http.MethodGet, "/api/state?filename=x.json", nil))

			if rec.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, test.wantStatus)
			}
		})
	}
}

func TestStateSave(t *testing.T) {
	service := &fakeStateService{}
	h := NewState(service)

	body := `{"entities": [{"id": "e1", "name": "North", "schemaId": "a"}]}`
	rec := httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest(http.MethodPost, "/api/state?filename=world.json", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body)
	}
	if service.gotName != "world.json" {
		t.Errorf("filename = %q", service.gotName)
	}
	if len(service.gotState.Entities) != 1 || service.gotState.Entities[0].Name != "North" {
		t.Errorf("saved state = %+v", service.gotState)
	}

	var got map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got["status"] != "saved" || got["filename"] != "world.json" {
		t.Errorf("response = %v", got)
	}
}

func TestStateSaveInvalidBody(t *testing.T) {
	h := NewState(&fakeStateService{})

	rec := httptest.NewRecorder()
	h.Save(rec, httptest.NewRequest(http.MethodPost, "/api/state?filename=x.json", strings.NewReader("{broken")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
