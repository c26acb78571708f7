// ABOUTME: Health handler reports liveness and the loaded corpus
// ABOUTME: Used by load balancers and deployment checks

package handlers

import (
	"context"
	"net/http"

	"feed-discovery-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// CorpusInfo describes the loaded corpus
type CorpusInfo interface {
	Len() int
	Source() string
}

// HealthHandler serves GET /health
type HealthHandler struct {
	corpus CorpusInfo
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(corpus CorpusInfo) *HealthHandler {
	return &HealthHandler{corpus: corpus}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the health response
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{Body: responses.HealthResponse{
		Status:     "ok",
		CorpusSize: h.corpus.Len(),
		Source:     h.corpus.Source(),
	}}, nil
}
