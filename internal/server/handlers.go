package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/openmesh-network/meshviz/pkg/buildinfo"
	"github.com/openmesh-network/meshviz/pkg/cache"
	errs "github.com/openmesh-network/meshviz/pkg/errors"
	"github.com/openmesh-network/meshviz/pkg/pipeline"
	"github.com/openmesh-network/meshviz/pkg/render/sink"
	"github.com/openmesh-network/meshviz/pkg/topology"
)

// paramsFromQuery reads nodes and allocation, falling back to the server
// defaults and clamping into the slider bounds. Non-numeric values are
// rejected.
func (s *Server) paramsFromQuery(r *http.Request) (topology.Params, error) {
	p := s.defaults
	q := r.URL.Query()
	if v := q.Get("nodes"); v != "" {
		n, err := errs.ParseFloat("nodes", v)
		if err != nil {
			return p, err
		}
		p.NodeCount = clampInt(n)
	}
	if v := q.Get("allocation"); v != "" {
		a, err := errs.ParseFloat("allocation", v)
		if err != nil {
			return p, err
		}
		p.AllocationPercent = a
	}
	return p.Clamp(), nil
}

// clampInt rounds v to an int without overflowing on huge inputs.
func clampInt(v float64) int {
	switch {
	case v > topology.MaxNodeCount:
		return topology.MaxNodeCount
	case v < topology.MinNodeCount:
		return topology.MinNodeCount
	default:
		return int(v + 0.5)
	}
}

func (s *Server) optionsFromQuery(r *http.Request, format string) (pipeline.Options, error) {
	p, err := s.paramsFromQuery(r)
	if err != nil {
		return pipeline.Options{}, err
	}
	q := r.URL.Query()
	opts := pipeline.Options{
		NodeCount:  p.NodeCount,
		Allocation: p.AllocationPercent,
		Layout:     s.layout,
		Formats:    []string{format},
		VizType:    q.Get("viz"),
		Responsive: q.Get("responsive") != "0",
		Hover:      true,
		Logger:     s.logger,
	}
	switch theme := q.Get("theme"); theme {
	case "", sink.ThemeLight:
	case sink.ThemeDark:
		opts.Dark = true
	default:
		return pipeline.Options{}, errs.New(errs.ErrCodeInvalidInput, "unknown theme %q", theme)
	}
	if title, ok := q["title"]; ok {
		opts.ShowTitle = true
		if len(title) > 0 {
			opts.Title = title[0]
		}
	}
	return opts, nil
}

func (s *Server) handleScene(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	opts, err := s.optionsFromQuery(r, format)
	if err != nil {
		writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		if statusFor(err) == http.StatusInternalServerError {
			s.logger.Error("render scene", "format", format, "err", err,
				"request_id", RequestIDFromContext(r.Context()))
		}
		writeError(w, r, err)
		return
	}

	data := res.Artifacts[format]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "public, max-age=300")
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	_, _ = w.Write(data)
}

// resourcesResponse is the body of GET /resources.
type resourcesResponse struct {
	NodeCount         int                     `json:"node_count"`
	AllocationPercent float64                 `json:"allocation_percent"`
	VMCount           int                     `json:"vm_count"`
	Resources         topology.ResourceTotals `json:"resources"`
	Display           map[string]string       `json:"display"`
	RingThickness     float64                 `json:"ring_thickness"`
}

func (s *Server) handleResources(w http.ResponseWriter, r *http.Request) {
	p, err := s.paramsFromQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	totals := topology.ComputeResources(p.NodeCount, p.AllocationPercent)
	writeJSON(w, http.StatusOK, resourcesResponse{
		NodeCount:         p.NodeCount,
		AllocationPercent: p.AllocationPercent,
		VMCount:           p.InnerCount(),
		Resources:         totals,
		Display: map[string]string{
			"cpu":     totals.FormatCPU(),
			"memory":  totals.FormatMemory(),
			"storage": totals.FormatStorage(),
		},
		RingThickness: topology.ComputeRingThickness(p.NodeCount, p.AllocationPercent),
	})
}

// handleHealth reports ok, or 503 when a networked cache cannot be reached.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := cache.Ping(r.Context(), s.runner.Cache); err != nil {
		writeError(w, r, errs.Wrap(errs.ErrCodeCacheUnavailable, err, "cache unreachable"))
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}
