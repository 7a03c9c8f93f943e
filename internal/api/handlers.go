package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/colorgraph/pkg/buildinfo"
	"github.com/matzehuels/colorgraph/pkg/cache"
	"github.com/matzehuels/colorgraph/pkg/coloring"
	cerrors "github.com/matzehuels/colorgraph/pkg/errors"
	"github.com/matzehuels/colorgraph/pkg/graph"
	"github.com/matzehuels/colorgraph/pkg/harness"
)

// ColoringRequest is the body of POST /v1/colorings.
type ColoringRequest struct {
	Graph          graph.Document `json:"graph"`
	Algorithm      string         `json:"algorithm,omitempty"` // defaults to DSatur
	Seed           *uint64        `json:"seed,omitempty"`
	IteratedGreedy *IGRequest     `json:"iterated_greedy,omitempty"`
}

// IGRequest overrides the server's Iterated Greedy settings. Zero and
// missing fields keep the server value.
type IGRequest struct {
	Limit        int              `json:"limit,omitempty"`
	Goal         int              `json:"goal,omitempty"`
	SortByDegree *bool            `json:"sort_by_degree,omitempty"`
	Ratios       *coloring.Ratios `json:"ratios,omitempty"`
}

// ColoringResponse is the body returned by POST /v1/colorings.
type ColoringResponse struct {
	Algorithm  string         `json:"algorithm"`
	Colors     int            `json:"colors"`
	Coloring   map[string]int `json:"coloring"`
	Order      []string       `json:"order,omitempty"`
	DurationMS float64        `json:"duration_ms"`

	// Cached is set when the response was served from the result cache;
	// DurationMS is then the time of the original run.
	Cached bool `json:"cached,omitempty"`
}

// AlgorithmInfo describes one entry of GET /v1/algorithms.
type AlgorithmInfo struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	UsesOrder bool   `json:"uses_order"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Code      cerrors.Code `json:"code"`
	Message   string       `json:"message"`
	RequestID string       `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respond(w, r, http.StatusOK, HealthResponse{Status: "ok", Build: buildinfo.Current()})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	algs := harness.DefaultAlgorithms(s.Defaults.IGOptions())
	out := make([]AlgorithmInfo, len(algs))
	for i, a := range algs {
		out[i] = AlgorithmInfo{Key: a.Key, Name: a.Name, UsesOrder: a.UsesOrder}
	}
	s.respond(w, r, http.StatusOK, out)
}

func (s *Server) handleColoring(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)

	var req ColoringRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.fail(w, r, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	if len(req.Graph.Nodes) > s.MaxVertices {
		s.fail(w, r, cerrors.New(cerrors.ErrCodeTooLarge,
			"graph has %d vertices, limit is %d", len(req.Graph.Nodes), s.MaxVertices))
		return
	}
	g, err := graph.ToUndirected(req.Graph)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	key := req.Algorithm
	if key == "" {
		key = harness.KeyDSatur
	}
	opts := s.igOptions(&req)
	alg, err := harness.Find(harness.DefaultAlgorithms(opts), key)
	if err != nil {
		s.fail(w, r, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "algorithm"))
		return
	}

	seed := s.Defaults.Seed
	if req.Seed != nil {
		seed = *req.Seed
	}

	ctx := r.Context()
	logger := loggerFromContext(ctx, s.Logger)
	cacheKey, err := coloringKey(g, alg.Key, seed, opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if resp, ok := s.cached(r, cacheKey); ok {
		logger.Debug("cache hit", "algorithm", alg.Key, "key", cacheKey)
		s.respond(w, r, http.StatusOK, resp)
		return
	}

	res, err := harness.Run(ctx, alg, g, coloring.NewRand(seed))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	logger.Debug("colored graph",
		"algorithm", res.Key,
		"vertices", g.Len(),
		"colors", res.Colors,
		"duration", res.Duration)

	resp := ColoringResponse{
		Algorithm:  res.Key,
		Colors:     res.Colors,
		Coloring:   res.Coloring.Map(),
		Order:      res.Order,
		DurationMS: float64(res.Duration) / float64(time.Millisecond),
	}
	s.store(r, cacheKey, resp)
	s.respond(w, r, http.StatusOK, resp)
}

// igKey is the part of the Iterated Greedy settings that changes a result.
type igKey struct {
	Limit        int             `json:"limit"`
	Goal         int             `json:"goal"`
	SortByDegree bool            `json:"sort_by_degree"`
	Ratios       coloring.Ratios `json:"ratios"`
}

// coloringKey identifies a run of algorithm on g. Iterated Greedy settings
// only count for the Iterated Greedy algorithm.
func coloringKey(g *graph.Undirected[string], algorithm string, seed uint64, opts coloring.IGOptions) (string, error) {
	data, err := graph.MarshalGraph(g)
	if err != nil {
		return "", cerrors.Wrap(cerrors.ErrCodeInternal, err, "hash graph")
	}
	var extra any
	if algorithm == harness.KeyIteratedGreedy {
		extra = igKey{Limit: opts.Limit, Goal: opts.Goal, SortByDegree: opts.SortByDegree, Ratios: opts.Ratios}
	}
	return cache.ColoringKey(cache.Hash(data), algorithm, seed, extra), nil
}

func (s *Server) cached(r *http.Request, key string) (ColoringResponse, bool) {
	logger := loggerFromContext(r.Context(), s.Logger)
	data, ok, err := s.Cache.Get(r.Context(), key)
	if err != nil {
		logger.Warn("cache read failed", "error", err)
		return ColoringResponse{}, false
	}
	if !ok {
		return ColoringResponse{}, false
	}
	var resp ColoringResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.Warn("cache entry undecodable", "key", key, "error", err)
		return ColoringResponse{}, false
	}
	resp.Cached = true
	return resp, true
}

func (s *Server) store(r *http.Request, key string, resp ColoringResponse) {
	data, err := json.Marshal(resp)
	if err == nil {
		err = s.Cache.Set(r.Context(), key, data, s.CacheTTL)
	}
	if err != nil {
		loggerFromContext(r.Context(), s.Logger).Warn("cache write failed", "error", err)
	}
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		loggerFromContext(r.Context(), s.Logger).Warn("encode response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := cerrors.GetCode(err)
	if code == "" {
		code = cerrors.ErrCodeInternal
	}
	msg := strings.TrimPrefix(err.Error(), string(code)+": ")
	if status == http.StatusInternalServerError {
		loggerFromContext(r.Context(), s.Logger).Error("request failed", "error", err)
		msg = http.StatusText(status)
	}
	id, _ := RequestIDFromContext(r.Context())
	s.respond(w, r, status, ErrorResponse{Code: code, Message: msg, RequestID: id})
}

func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge), cerrors.Is(err, cerrors.ErrCodeTooLarge):
		return http.StatusRequestEntityTooLarge
	case cerrors.IsValidation(err):
		return http.StatusBadRequest
	case cerrors.GetCode(err) == cerrors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case cerrors.Is(err, cerrors.ErrCodeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
