package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"levantd/pkg/domain"
)

type fakeDispatcher struct {
	result domain.GenerateResult
	err    error
	gotReq *domain.GenerateRequest
}

func (f *fakeDispatcher) Dispatch(_ context.Context, req domain.GenerateRequest) (domain.GenerateResult, error) {
	f.gotReq = &req
	return f.result, f.err
}

func TestGenerate(t *testing.T) {
	dispatcher := &fakeDispatcher{result: domain.GenerateResult{Result: "the realm endures"}}
	h := NewGenerate(dispatcher)

	body := `{"provider": "gemini", "apiKey": "key", "userPrompt": "advance"}`
	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/ai/generate", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var got domain.GenerateResult
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Result != "the realm endures" {
		t.Errorf("Result = %q", got.Result)
	}
	if dispatcher.gotReq.Provider != "gemini" || dispatcher.gotReq.UserPrompt != "advance" {
		t.Errorf("dispatched request = %+v", dispatcher.gotReq)
	}
}

func TestGenerateInvalidBody(t *testing.T) {
	h := NewGenerate(&fakeDispatcher{})

	rec := httptest.NewRecorder()
	h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/ai/generate", strings.NewReader("{broken")))

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{"missing key", domain.ErrMissingAPIKey, http.StatusBadRequest, "Missing API Key"},
		{"provider failure", errors.New(`provider "gemini": boom`), http.StatusBadGateway, `provider "gemini": boom`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := NewGenerate(&fakeDispatcher{err: test.err})

			rec := httptest.NewRecorder()
			h.Generate(rec, httptest.NewRequest(http.MethodPost, "/api/ai/generate", strings.NewReader("{}")))

			if rec.Code != test.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, test.wantStatus)
			}
			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body["detail"] != test.wantDetail {
				t.Errorf("detail = %q, want %q", body["detail"], test.wantDetail)
			}
		})
	}
}
