package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"levantd/pkg/api/response"
	"levantd/pkg/domain"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.GenerateRequest) (domain.GenerateResult, error)
}

type generate struct {
	dispatcher Dispatcher
	writer     response.JSONResponseWriter
}

func NewGenerate(dispatcher Dispatcher) *generate {
	return &generate{dispatcher: dispatcher}
}

func (g *generate) Generate(w http.ResponseWriter, r *http.Request) {
	var req domain.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		g.writer.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := g.dispatcher.Dispatch(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrMissingAPIKey) {
			g.writer.WriteErrorResponse(w, http.StatusBadRequest, "Missing API Key")
			return
		}
		g.writer.WriteErrorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	g.writer.WriteSuccessResponse(w, result)
}
