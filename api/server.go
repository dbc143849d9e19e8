// Package api exposes the estimation engines, the questionnaire flow and
// the intake analyzer over HTTP. Handlers are thin: decode, delegate to
// the pure decision plane, encode. All state lives in the request payload.
package api

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"bati-cost/decision/estimation"
	"bati-cost/decision/flow"
	"bati-cost/decision/intake"
	"bati-cost/decision/record"
	contracts "bati-cost/pkg/api"
)

// Config carries the server settings. An empty Host binds all interfaces.
type Config struct {
	Host  string
	Port  int
	Rates *estimation.RateBook
}

// Server wires the decision plane to fasthttp. Store and notifier are
// optional; without them the estimate endpoints stay purely computational.
type Server struct {
	cfg      Config
	engine   *estimation.Engine
	log      zerolog.Logger
	store    contracts.EstimateStore
	notifier contracts.Notifier
}

// NewServer builds a server around an engine configured with cfg.Rates.
func NewServer(cfg Config, log zerolog.Logger) *Server {
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	return &Server{
		cfg:    cfg,
		engine: estimation.NewEngine(cfg.Rates),
		log:    log,
	}
}

// WithStore enables persistence of completed estimates.
func (s *Server) WithStore(store contracts.EstimateStore) *Server {
	s.store = store
	return s
}

// WithNotifier enables the email recap after an estimate is saved.
func (s *Server) WithNotifier(n contracts.Notifier) *Server {
	s.notifier = n
	return s
}

// ListenAndServe blocks serving HTTP until the listener fails.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.log.Info().Str("addr", addr).Msg("http server listening")
	return fasthttp.ListenAndServe(addr, s.Handler)
}

// Handler routes a single request. Exposed for tests.
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	reqID := uuid.NewString()
	ctx.Response.Header.Set("X-Request-Id", reqID)
	path := string(ctx.Path())

	s.log.Debug().Str("request_id", reqID).Str("method", string(ctx.Method())).Str("path", path).Msg("request")

	switch path {
	case "/health":
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
	case "/api/v1/estimate":
		s.handleEstimate(ctx)
	case "/api/v1/estimate/quick":
		s.handleQuick(ctx)
	case "/api/v1/analyze":
		s.handleAnalyze(ctx)
	case "/api/v1/suggest":
		s.handleSuggest(ctx)
	case "/api/v1/steps/resolve":
		s.handleResolve(ctx)
	case "/api/v1/steps/next":
		s.handleNext(ctx)
	case "/api/v1/steps/previous":
		s.handlePrevious(ctx)
	case "/api/v1/validate":
		s.handleValidate(ctx)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "unknown route")
	}
}

type estimateRequest struct {
	Record   record.AnswerRecord `json:"record"`
	WithLand bool                `json:"with_land,omitempty"`
	Save     bool                `json:"save,omitempty"`
}

type estimateResponse struct {
	Result     estimation.EstimationResult `json:"result"`
	EstimateID *uuid.UUID                  `json:"estimate_id,omitempty"`
}

func (s *Server) handleEstimate(ctx *fasthttp.RequestCtx) {
	var req estimateRequest
	if !decode(ctx, &req) {
		return
	}

	var res estimation.EstimationResult
	if req.WithLand {
		res = s.engine.ComputeWithLand(&req.Record)
	} else {
		res = s.engine.Compute(&req.Record)
	}

	resp := estimateResponse{Result: res}
	if req.Save && s.store != nil {
		summary := contracts.NewEstimateSummary(&req.Record, &res)
		id, err := s.store.Save(ctx, summary)
		if err != nil {
			s.log.Error().Err(err).Msg("estimate save failed")
			writeError(ctx, fasthttp.StatusInternalServerError, "could not persist estimate")
			return
		}
		resp.EstimateID = &id
		if s.notifier != nil && req.Record.Email != nil && *req.Record.Email != "" {
			if err := s.notifier.NotifyEstimate(ctx, *req.Record.Email, summary); err != nil {
				s.log.Warn().Err(err).Msg("estimate notification failed")
			}
		}
	}
	writeJSON(ctx, fasthttp.StatusOK, resp)
}

func (s *Server) handleQuick(ctx *fasthttp.RequestCtx) {
	var req struct {
		Record record.AnswerRecord `json:"record"`
	}
	if !decode(ctx, &req) {
		return
	}
	total := s.engine.ComputeQuick(&req.Record)
	writeJSON(ctx, fasthttp.StatusOK, map[string]float64{"total": total})
}

func (s *Server) handleAnalyze(ctx *fasthttp.RequestCtx) {
	var req struct {
		Text string `json:"text"`
	}
	if !decode(ctx, &req) {
		return
	}
	analysis := intake.AnalyzeInput(req.Text)
	writeJSON(ctx, fasthttp.StatusOK, struct {
		intake.Analysis
		Patch *record.AnswerRecord `json:"patch"`
	}{Analysis: analysis, Patch: analysis.Entities.Patch()})
}

func (s *Server) handleSuggest(ctx *fasthttp.RequestCtx) {
	var req struct {
		Record record.AnswerRecord `json:"record"`
	}
	if !decode(ctx, &req) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string][]string{
		"suggestions": intake.GenerateSuggestions(&req.Record),
	})
}

type stepView struct {
	Index int    `json:"index"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (s *Server) handleResolve(ctx *fasthttp.RequestCtx) {
	var req struct {
		Record record.AnswerRecord `json:"record"`
	}
	if !decode(ctx, &req) {
		return
	}
	steps := flow.ResolveVisibleSteps(&req.Record)
	views := make([]stepView, len(steps))
	for i, st := range steps {
		views[i] = stepView{Index: i, ID: st.ID, Title: st.Title}
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string][]stepView{"steps": views})
}

type navigateRequest struct {
	Current int                 `json:"current"`
	Record  record.AnswerRecord `json:"record"`
}

func (s *Server) handleNext(ctx *fasthttp.RequestCtx) {
	var req navigateRequest
	if !decode(ctx, &req) {
		return
	}
	next, validation := flow.GoNext(req.Current, &req.Record)
	writeJSON(ctx, fasthttp.StatusOK, struct {
		Index      int                   `json:"index"`
		Validation flow.ValidationResult `json:"validation"`
	}{Index: next, Validation: validation})
}

func (s *Server) handlePrevious(ctx *fasthttp.RequestCtx) {
	var req navigateRequest
	if !decode(ctx, &req) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]int{
		"index": flow.GoPrevious(req.Current, &req.Record),
	})
}

func (s *Server) handleValidate(ctx *fasthttp.RequestCtx) {
	var req struct {
		Index  int                 `json:"index"`
		Record record.AnswerRecord `json:"record"`
	}
	if !decode(ctx, &req) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, flow.ValidateStep(req.Index, &req.Record))
}

func decode(ctx *fasthttp.RequestCtx, v any) bool {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "POST required")
		return false
	}
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json; charset=utf-8")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, map[string]any{"status": status, "message": message})
}
