package handler

import (
	"context"

	"github.com/nward/catalog-api/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}

// GetReady handles GET /readyz.
// It reports HTTP 503 when the database cannot be reached, so orchestrators
// stop routing traffic to this instance until the pool recovers.
func (s *Server) GetReady(ctx context.Context, _ gen.GetReadyRequestObject) (gen.GetReadyResponseObject, error) {
	if s.db != nil {
		if err := s.db.Ping(ctx); err != nil {
			return gen.GetReady503JSONResponse{Status: "unavailable"}, nil
		}
	}
	return gen.GetReady200JSONResponse{Status: "ok"}, nil
}
