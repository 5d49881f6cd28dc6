package handler

import (
	"context"
	"net/http"

	"levantd/pkg/api/response"
)

type SavesService interface {
	ListSaves(ctx context.Context) ([]string, error)
	DeleteSave(ctx context.Context, filename string) error
}

type saves struct {
	service SavesService
	writer  response.JSONResponseWriter
}

func NewSaves(service SavesService) *saves {
	return &saves{service: service}
}

func (s *saves) List(w http.ResponseWriter, r *http.Request) {
	files, err := s.service.ListSaves(r.Context())
	if err != nil {
		s.writer.WriteErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writer.WriteSuccessResponse(w, map[string][]string{"files": files})
}

func (s *saves) Delete(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	if err := s.service.DeleteSave(r.Context(), filename); err != nil {
		s.writer.WriteErrorResponse(w, statusFor(err), err.Error())
		return
	}

	s.writer.WriteSuccessResponse(w, map[string]string{
		"status":   "deleted",
		"filename": filename,
	})
}
