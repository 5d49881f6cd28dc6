package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"levantd/pkg/api/response"
	"levantd/pkg/domain"
)

type StateService interface {
	LoadState(ctx context.Context, filename string) (*domain.GameState, error)
	SaveState(ctx context.Context, filename string, state domain.GameState) error
}

type state struct {
	service StateService
	writer  response.JSONResponseWriter
}

func NewState(service StateService) *state {
	return &state{service: service}
}

func (s *state) Load(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		s.writer.WriteErrorResponse(w, http.StatusBadRequest, "Filename parameter is missing.")
		return
	}

	gameState, err := s.service.LoadState(r.Context(), filename)
	if err != nil {
		s.writer.WriteErrorResponse(w, statusFor(err), err.Error())
		return
	}

	s.writer.WriteSuccessResponse(w, gameState)
}

func (s *state) Save(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("filename")
	if filename == "" {
		s.writer.WriteErrorResponse(w, http.StatusBadRequest, "Filename parameter is missing.")
		return
	}

	var gameState domain.GameState
	if err := json.NewDecoder(r.Body).Decode(&gameState); err != nil {
		s.writer.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.service.SaveState(r.Context(), filename, gameState); err != nil {
		s.writer.WriteErrorResponse(w, statusFor(err), err.Error())
		return
	}

	s.writer.WriteSuccessResponse(w, map[string]string{
		"status":   "saved",
		"filename": filename,
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidFilename):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSaveNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
