package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"saleschart/pkg/chart/layout"
	"saleschart/pkg/chart/sink"
	"saleschart/pkg/errors"
	"saleschart/pkg/sales"
)

// errorResponse is the JSON body for any failed request.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVendas returns the dataset exactly as the provider produced it.
// An empty dataset is a valid 200 response with an empty array.
func (s *Server) handleVendas(w http.ResponseWriter, r *http.Request) {
	ds, err := s.provider.Fetch(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if ds == nil {
		ds = sales.Dataset{}
	}
	writeJSON(w, http.StatusOK, ds)
}

// handleChartSVG runs the full fetch, layout, paint cycle and returns the
// resulting document. The layout is recomputed from scratch per request;
// no geometry survives between requests.
func (s *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	ds, err := s.provider.Fetch(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	l := layout.Compute(ds, s.canvas)

	var opts []sink.SVGOption
	if s.opts.ChartTitle != "" {
		opts = append(opts, sink.WithTitle(s.opts.ChartTitle))
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(sink.RenderSVG(l, opts...))
}

// writeError maps provider failures to a single opaque 5xx response.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "code", errors.GetCode(err), "err", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{
		Error: errorBody{
			Code:    string(errors.GetCode(err)),
			Message: errors.UserMessage(err),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
